package stats

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold normaliza s para comparaciones sin distinción de mayúsculas (case folding Unicode).
// cases.Caser no es seguro entre goroutines, por eso se crea uno por llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsFold indica si s contiene term; term ya debe venir normalizado con fold.
func containsFold(s, term string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(fold(s), term)
}
