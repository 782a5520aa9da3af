package model

import "strings"

// NormalizeListID rewrites a list address into the archive's list-id form:
// enclosing angle brackets and surrounding whitespace are stripped, every @
// becomes a dot and the result is re-wrapped, e.g.
// dev@example.org -> <dev.example.org>.
func NormalizeListID(list string) string {
	lid := strings.Trim(strings.TrimSpace(list), "<>")
	return "<" + strings.ReplaceAll(lid, "@", ".") + ">"
}
