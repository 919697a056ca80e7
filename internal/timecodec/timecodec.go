// Package timecodec convierte horarios entre la forma de pantalla ("HH:MM")
// y la forma canónica que persiste la API ("HH:MM+0000").
package timecodec

import (
	"regexp"
	"strings"
)

// Suffix es el offset UTC fijo que lleva la forma canónica.
const Suffix = "+0000"

var leadingDigits = regexp.MustCompile(`^(\d{2})(\d{2})`)

func insertColon(s string) string {
	return leadingDigits.ReplaceAllString(s, "$1:$2")
}

// Encode pasa un horario de pantalla a forma canónica.
// "2000" -> "20:00+0000", "20:00" -> "20:00+0000". No valida la entrada.
func Encode(display string) string {
	s := insertColon(display)
	if strings.HasSuffix(s, Suffix) {
		return s
	}
	return s + Suffix
}

// Decode pasa un horario canónico a forma de pantalla. El string vacío se devuelve tal cual.
func Decode(canonical string) string {
	if canonical == "" {
		return canonical
	}
	return strings.Replace(insertColon(canonical), Suffix, "", 1)
}
