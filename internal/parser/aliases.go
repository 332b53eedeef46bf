package parser

import "strings"

// Column headers vary per manufacturer sheet, so every logical field resolves
// through an ordered alias list: exact header name first, then a
// case-insensitive pass. Kept as data, not branching code.
var (
	aliasIDItem        = []string{"ID Item", "IDItem", "ID_Item", "Material"}
	aliasTextoBreve    = []string{"Texto breve del material", "Texto breve", "TextoBreve", "Texto"}
	aliasTipo          = []string{"TIPO", "Tipo", "tipo"}
	aliasFabricante    = []string{"FABRICANTE", "Fabricante", "fabricante"}
	aliasCabeza        = []string{"Cabeza", "cabeza"}
	aliasParteDivision = []string{"Parte (Division)", "Parte", "Division", "Parte_Division", "Parte(Division)"}
	aliasCuerpo        = []string{"Cuerpo", "cuerpo"}
	aliasTramo         = []string{"Tramo", "tramo"}
	aliasPosicion      = []string{"Posición", "Posicion", "posicion", "Pos"}
	aliasDescripcion   = []string{"Descripción", "Descripcion", "descripcion"}
	aliasLong2         = []string{"Long 2 (Principal)", "Long 2", "Long2", "Long_2", "Long 2(Principal)"}
	aliasCantidad      = []string{"Cantidad x Torre", "Cantidad", "Cant x Torre", "Cant", "Cantidad Torre"}
	aliasPeso          = []string{"Peso Unitario", "Peso", "PesoUnitario", "Peso Unit"}
	aliasPlano         = []string{"PLANO", "Plano", "plano"}
	aliasModPlano      = []string{"Mod Plano", "ModPlano", "Mod_Plano"}
)

// rowValues maps one data row's cells by their header name.
type rowValues struct {
	exact map[string]string
	lower map[string]string
}

// newRowValues pairs a header row with a data row. Headers past the end of
// the data row resolve to the empty string; empty header cells are skipped.
func newRowValues(headers, row []string) rowValues {
	rv := rowValues{
		exact: make(map[string]string, len(headers)),
		lower: make(map[string]string, len(headers)),
	}
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		value := ""
		if i < len(row) {
			value = row[i]
		}
		rv.exact[header] = value
		rv.lower[strings.ToLower(header)] = value
	}
	return rv
}

// lookup resolves the first alias present in the row, even when its cell is
// empty. A missing alias match yields the empty string.
func (rv rowValues) lookup(aliases []string) string {
	for _, name := range aliases {
		if v, ok := rv.exact[name]; ok {
			return v
		}
		if v, ok := rv.lower[strings.ToLower(name)]; ok {
			return v
		}
	}
	return ""
}
