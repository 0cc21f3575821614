package entity

import "time"

// User usuario del sistema. Solo se usa para login y atribución de auditoría;
// el registro y la recuperación de contraseña quedan fuera de esta API.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string // "admin" | "bodeguero"
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
