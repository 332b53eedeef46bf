package calculator

import (
	"testing"

	"desglose/internal/model"
)

func piece(parte string, cantidad, peso float64) model.Piece {
	return model.Piece{
		IDItem:         "M1",
		Tipo:           "AC",
		Fabricante:     "AJIKAWA HB",
		ParteDivision:  parte,
		CantidadXTorre: cantidad,
		PesoUnitario:   peso,
	}
}

func sel(part string, qty float64) []model.PartSelection {
	return []model.PartSelection{{Part: part, Quantity: qty}}
}

// TestDivideBy2 keeps exact (possibly fractional) halves
func TestDivideBy2(t *testing.T) {
	data := []model.Piece{piece("BSUP", 2, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("BSUP", 3))

	if len(result.Results) != 1 {
		t.Fatalf("got %d lines, want 1", len(result.Results))
	}
	if got := result.Results[0].CantidadCalculada; got != 3 {
		t.Errorf("CantidadCalculada = %v, want 3 (2*3/2)", got)
	}
}

// TestDivideBy2Fractional: halves are not rounded
func TestDivideBy2Fractional(t *testing.T) {
	data := []model.Piece{piece("BINF", 3, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("BINF", 1))

	if got := result.Results[0].CantidadCalculada; got != 1.5 {
		t.Errorf("CantidadCalculada = %v, want 1.5 (3*1/2)", got)
	}
}

// TestSingleInstanceOverride: cantidad 1 is already whole, no division
func TestSingleInstanceOverride(t *testing.T) {
	data := []model.Piece{piece("BSUP", 1, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("BSUP", 5))

	if got := result.Results[0].CantidadCalculada; got != 5 {
		t.Errorf("CantidadCalculada = %v, want 5 (sin división)", got)
	}
}

// TestDivideBy4Ceiling: quarter-sections round up
func TestDivideBy4Ceiling(t *testing.T) {
	data := []model.Piece{piece("PATA 3", 3, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("PATA 3", 3))

	if got := result.Results[0].CantidadCalculada; got != 3 {
		t.Errorf("CantidadCalculada = %v, want 3 (ceil(9/4))", got)
	}
}

// TestNonDivisionPart multiplies directly
func TestNonDivisionPart(t *testing.T) {
	data := []model.Piece{piece("TORNILLO", 4, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("TORNILLO", 2))

	if got := result.Results[0].CantidadCalculada; got != 8 {
		t.Errorf("CantidadCalculada = %v, want 8", got)
	}
}

// TestPartNameMatchingNormalized: selection names match case/space-insensitively
func TestPartNameMatchingNormalized(t *testing.T) {
	data := []model.Piece{piece("bsup", 2, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("  BSUP ", 4))

	if len(result.Results) != 1 {
		t.Fatalf("got %d lines, want 1", len(result.Results))
	}
	if got := result.Results[0].CantidadCalculada; got != 4 {
		t.Errorf("CantidadCalculada = %v, want 4 (2*4/2)", got)
	}
}

// TestSentinelPartSkipped: pieces without a part division emit nothing
func TestSentinelPartSkipped(t *testing.T) {
	data := []model.Piece{piece("-", 2, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("-", 4))

	if len(result.Results) != 0 {
		t.Errorf("got %d lines, want 0", len(result.Results))
	}
}

// TestZeroQuantityExcluded: unmatched pieces emit no line
func TestZeroQuantityExcluded(t *testing.T) {
	data := []model.Piece{piece("BSUP", 2, 0), piece("BMED", 2, 0)}
	result := Calculate(data, model.CalcFilters{}, sel("BSUP", 1))

	if len(result.Results) != 1 {
		t.Errorf("got %d lines, want 1 (BMED sin selección se excluye)", len(result.Results))
	}
}

// TestRepeatedSelectionsAccumulate: duplicate part names sum contributions
func TestRepeatedSelectionsAccumulate(t *testing.T) {
	data := []model.Piece{piece("TORNILLO", 2, 0)}
	parts := []model.PartSelection{
		{Part: "TORNILLO", Quantity: 1},
		{Part: "TORNILLO", Quantity: 2},
	}
	result := Calculate(data, model.CalcFilters{}, parts)

	if got := result.Results[0].CantidadCalculada; got != 6 {
		t.Errorf("CantidadCalculada = %v, want 6 (2*1 + 2*2)", got)
	}
}

// TestBaseFilters: tipo/fabricante/cabeza/cuerpo narrow the dataset first
func TestBaseFilters(t *testing.T) {
	a := piece("BSUP", 2, 0)
	b := piece("BSUP", 2, 0)
	b.Tipo = "A30"
	data := []model.Piece{a, b}

	result := Calculate(data, model.CalcFilters{Tipo: "AC"}, sel("BSUP", 2))
	if len(result.Results) != 1 {
		t.Errorf("got %d lines, want 1", len(result.Results))
	}
}

// TestWeightsAndTotals: peso_total and the aggregate totals
func TestWeightsAndTotals(t *testing.T) {
	data := []model.Piece{
		piece("BSUP", 2, 5.5),
		piece("TORNILLO", 4, 0.25),
	}
	parts := []model.PartSelection{
		{Part: "BSUP", Quantity: 4},
		{Part: "TORNILLO", Quantity: 2},
	}

	result := Calculate(data, model.CalcFilters{}, parts)
	if len(result.Results) != 2 {
		t.Fatalf("got %d lines, want 2", len(result.Results))
	}

	// BSUP: 2*4/2 = 4 piezas, 4*5.5 = 22 kg
	if got := result.Results[0].CantidadCalculada; got != 4 {
		t.Errorf("BSUP CantidadCalculada = %v, want 4", got)
	}
	if got := result.Results[0].PesoTotal; got != 22 {
		t.Errorf("BSUP PesoTotal = %v, want 22", got)
	}

	// TORNILLO: 4*2 = 8 piezas, 8*0.25 = 2 kg
	if got := result.Results[1].PesoTotal; got != 2 {
		t.Errorf("TORNILLO PesoTotal = %v, want 2", got)
	}

	if result.Totals.TotalPieces != 12 {
		t.Errorf("TotalPieces = %v, want 12", result.Totals.TotalPieces)
	}
	if result.Totals.TotalWeight != 24 {
		t.Errorf("TotalWeight = %v, want 24", result.Totals.TotalWeight)
	}
}
