package parser

import (
	"regexp"
	"strings"
)

// Sheet names encode the tower type and manufacturer, e.g.
// "AJIKAWA (AC - HB)", "SAE (A30)" or "AC_TORRES". Patterns are tried in
// order; the first match wins.
var (
	reNameTypeSubtype = regexp.MustCompile(`(?i)^([A-Z\s]+)\s*\(([A-Z]+)\s*-\s*([A-Z]+)\)$`)
	reNameType        = regexp.MustCompile(`(?i)^([A-Z\s]+)\s*\(([A-Z0-9]+)\)$`)
	reTypeName        = regexp.MustCompile(`(?i)^([A-Z]+)[_\-](.+)$`)
)

// ExtractTipoFabricante derives (tipo, fabricante) from a sheet name.
// Falls back to the upper-cased sheet name for both when no pattern matches.
func ExtractTipoFabricante(sheetName string) (tipo, fabricante string) {
	if m := reNameTypeSubtype.FindStringSubmatch(sheetName); m != nil {
		name := strings.ToUpper(strings.TrimSpace(m[1]))
		tipo = strings.ToUpper(strings.TrimSpace(m[2]))
		subtipo := strings.ToUpper(strings.TrimSpace(m[3]))
		return tipo, name + " " + subtipo
	}

	if m := reNameType.FindStringSubmatch(sheetName); m != nil {
		name := strings.ToUpper(strings.TrimSpace(m[1]))
		tipo = strings.ToUpper(strings.TrimSpace(m[2]))
		return tipo, name
	}

	if m := reTypeName.FindStringSubmatch(sheetName); m != nil {
		return strings.ToUpper(strings.TrimSpace(m[1])), strings.ToUpper(strings.TrimSpace(m[2]))
	}

	upper := strings.ToUpper(sheetName)
	return upper, upper
}
