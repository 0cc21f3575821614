package entity

import "time"

// Estados y prioridades de tareas de almacén.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task tarea de almacén, opcionalmente ligada a un picking.
type Task struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string
	PickingID   string
	Status      string
	Priority    string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
