package model

// OptionsFilters narrows the dataset before collecting distinct field values.
// Empty fields are ignored; non-empty fields are conjunctive exact matches.
type OptionsFilters struct {
	Tipo       string
	Fabricante string
	Cabeza     string
	Cuerpo     string
	Tramo      string
}

// Options holds the sorted distinct values of each filterable field.
type Options struct {
	Tipo          []string `json:"TIPO"`
	Fabricante    []string `json:"FABRICANTE"`
	Cabeza        []string `json:"CABEZA"`
	Cuerpo        []string `json:"CUERPO"`
	ParteDivision []string `json:"PARTE_DIVISION"`
	Tramo         []string `json:"TRAMO"`
}

// SearchFilters narrows the dataset for piece search. Tramo matches
// case-insensitively; the rest are exact matches on the stored value.
type SearchFilters struct {
	Tipo       string
	Fabricante string
	Cabeza     string
	Parte      string
	Cuerpo     string
	Tramo      string
}

// CalcFilters narrows the dataset for the material calculation. Part division
// and tramo are intentionally absent: the calculation matches parts against
// the user's selections instead.
type CalcFilters struct {
	Tipo       string `json:"tipo"`
	Fabricante string `json:"fabricante"`
	Cabeza     string `json:"cabeza"`
	Cuerpo     string `json:"cuerpo"`
}
