package model

import "unicode/utf8"

// Sentinel is the normalized placeholder for an absent text field. External
// consumers (the spreadsheet itself and the JSON payloads) expect the literal
// "-"; keeping it at the model edge avoids re-mapping on every boundary.
const Sentinel = "-"

// IsSet reports whether a normalized text field carries a real value.
func IsSet(v string) bool {
	return v != "" && v != Sentinel
}

// Piece is one normalized tower-part record flattened out of a workbook row.
type Piece struct {
	IDItem         string  `json:"id_item"`
	TextoBreve     string  `json:"texto_breve"`
	Tipo           string  `json:"tipo"`
	Fabricante     string  `json:"fabricante"`
	Cabeza         string  `json:"cabeza"`
	ParteDivision  string  `json:"parte_division"`
	Cuerpo         string  `json:"cuerpo"`
	Tramo          string  `json:"tramo"`
	Posicion       string  `json:"posicion"`
	Descripcion    string  `json:"descripcion"`
	Long2Principal string  `json:"long_2_principal"`
	CantidadXTorre float64 `json:"cantidad_x_torre"`
	PesoUnitario   float64 `json:"peso_unitario"`
	Plano          string  `json:"plano"`
	ModPlano       string  `json:"mod_plano"`
	HojaOrigen     string  `json:"hoja_origen"`
}

// HasMinimumData reports whether the piece carries enough data to be kept in
// the dataset: an id, a part division, or a description longer than 3 runes.
func (p *Piece) HasMinimumData() bool {
	if IsSet(p.IDItem) {
		return true
	}
	if IsSet(p.ParteDivision) {
		return true
	}
	return IsSet(p.Descripcion) && utf8.RuneCountInString(p.Descripcion) > 3
}
