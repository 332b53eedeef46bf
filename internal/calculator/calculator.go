// Package calculator computes scaled material quantities per selected tower
// section. Some structural parts ship as split assemblies: bases count as
// halves (divide by 2, exact, fractional results allowed) and legs as
// quarter-sections (divide by 4, rounded up). A spreadsheet quantity of
// exactly 1 is already a whole part and is never divided.
package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"desglose/internal/model"
)

// partsDiv2 holds the base assemblies counted in halves.
var partsDiv2 = map[string]struct{}{
	"BGDA":     {},
	"BSUP":     {},
	"BMED":     {},
	"BINF":     {},
	"BDER":     {},
	"BIZQ":     {},
	"BSUP/MED": {},
}

// partsDiv4 holds the leg sections counted in quarters.
var partsDiv4 = map[string]struct{}{
	"PATA 0":   {},
	"PATA 0.0": {},
	"PATA 1.5": {},
	"PATA 3":   {},
	"PATA 3.0": {},
	"PATA 4.5": {},
	"PATA 6":   {},
	"PATA 6.0": {},
	"PATA 7.5": {},
	"PATA 9":   {},
	"PATA 9.0": {},
}

var (
	two  = decimal.NewFromInt(2)
	four = decimal.NewFromInt(4)
)

// Calculate filters the dataset by the base filters, matches each remaining
// piece against the selected parts and applies the division policy. Pieces
// whose accumulated quantity stays at zero emit no line.
func Calculate(data []model.Piece, f model.CalcFilters, parts []model.PartSelection) model.CalcResult {
	results := make([]model.CalculatedPiece, 0, 32)
	totalPieces := decimal.Zero
	totalWeight := decimal.Zero

	for i := range data {
		p := &data[i]
		if f.Tipo != "" && p.Tipo != f.Tipo {
			continue
		}
		if f.Fabricante != "" && p.Fabricante != f.Fabricante {
			continue
		}
		if f.Cabeza != "" && p.Cabeza != f.Cabeza {
			continue
		}
		if f.Cuerpo != "" && p.Cuerpo != f.Cuerpo {
			continue
		}

		parteDiv := strings.ToUpper(strings.TrimSpace(p.ParteDivision))
		if parteDiv == "" || parteDiv == model.Sentinel {
			continue
		}

		original := decimal.NewFromFloat(p.CantidadXTorre)
		calculated := decimal.Zero

		for _, sel := range parts {
			if strings.ToUpper(strings.TrimSpace(sel.Part)) != parteDiv {
				continue
			}
			multiplier := decimal.NewFromFloat(sel.Quantity)
			scaled := original.Mul(multiplier)

			_, div2 := partsDiv2[parteDiv]
			_, div4 := partsDiv4[parteDiv]

			switch {
			case (div2 || div4) && p.CantidadXTorre == 1:
				// Cantidad única: la pieza ya está completa, no se divide
				calculated = calculated.Add(scaled)
			case div2:
				calculated = calculated.Add(scaled.Div(two))
			case div4:
				calculated = calculated.Add(scaled.Div(four).Ceil())
			default:
				calculated = calculated.Add(scaled)
			}
		}

		if !calculated.IsPositive() {
			continue
		}

		weight := calculated.Mul(decimal.NewFromFloat(p.PesoUnitario))
		results = append(results, model.CalculatedPiece{
			IDItem:            p.IDItem,
			TextoBreve:        p.TextoBreve,
			Descripcion:       p.Descripcion,
			ParteDivision:     p.ParteDivision,
			Posicion:          p.Posicion,
			CantidadOriginal:  p.CantidadXTorre,
			CantidadCalculada: calculated.InexactFloat64(),
			PesoUnitario:      p.PesoUnitario,
			PesoTotal:         weight.InexactFloat64(),
			Long2Principal:    p.Long2Principal,
			Plano:             p.Plano,
			ModPlano:          p.ModPlano,
		})

		totalPieces = totalPieces.Add(calculated)
		totalWeight = totalWeight.Add(weight)
	}

	return model.CalcResult{
		Results: results,
		Totals: model.CalcTotals{
			TotalPieces: totalPieces.InexactFloat64(),
			TotalWeight: totalWeight.InexactFloat64(),
		},
	}
}
