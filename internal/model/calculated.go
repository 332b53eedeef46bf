package model

// PartSelection is one user-selected tower section with its multiplier
// (how many towers' worth of material to calculate).
type PartSelection struct {
	Part     string  `json:"part"`
	Quantity float64 `json:"quantity"`
}

// CalculatedPiece is one output line of the material calculation.
type CalculatedPiece struct {
	IDItem            string  `json:"id_item"`
	TextoBreve        string  `json:"texto_breve"`
	Descripcion       string  `json:"descripcion"`
	ParteDivision     string  `json:"parte_division"`
	Posicion          string  `json:"posicion"`
	CantidadOriginal  float64 `json:"cantidad_original"`
	CantidadCalculada float64 `json:"cantidad_calculada"`
	PesoUnitario      float64 `json:"peso_unitario"`
	PesoTotal         float64 `json:"peso_total"`
	Long2Principal    string  `json:"long_2_principal"`
	Plano             string  `json:"plano"`
	ModPlano          string  `json:"mod_plano"`
}

// CalcTotals aggregates all calculated lines.
type CalcTotals struct {
	TotalPieces float64 `json:"total_pieces"`
	TotalWeight float64 `json:"total_weight"`
}

// CalcResult is the full material calculation output.
type CalcResult struct {
	Results []CalculatedPiece `json:"results"`
	Totals  CalcTotals        `json:"totals"`
}
