// Package search normaliza texto para búsquedas insensibles a acentos y
// mayúsculas: "Almacén" y "almacen" deben coincidir.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve s en minúsculas y sin marcas diacríticas. Si la
// transformación falla (entrada no UTF-8 válida), devuelve s en minúsculas.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Like devuelve el patrón SQL LIKE para una búsqueda parcial normalizada.
func Like(s string) string {
	return "%" + Normalize(s) + "%"
}
