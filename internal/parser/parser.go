// Package parser turns raw spreadsheet sheets into normalized tower-part
// records. It is a pure transform: malformed rows are dropped, never errors.
package parser

import (
	"strings"

	"desglose/internal/model"
)

// headerScanLimit bounds how many leading rows are inspected for the header.
const headerScanLimit = 10

// findHeaderRow locates the header row inside the first rows of a sheet.
// A row qualifies when its concatenated upper-cased cells contain one of the
// known column signatures. Returns -1 when the sheet has no recognizable
// header (such sheets yield no records).
func findHeaderRow(rows [][]string) int {
	limit := headerScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}
	for i := 0; i < limit; i++ {
		joined := strings.ToUpper(strings.Join(rows[i], "|"))
		if strings.Contains(joined, "ID ITEM") ||
			strings.Contains(joined, "FABRICANTE") ||
			strings.Contains(joined, "PARTE") ||
			(strings.Contains(joined, "TIPO") && strings.Contains(joined, "CABEZA")) {
			return i
		}
	}
	return -1
}

// Parse converts one sheet's grid into zero or more pieces. The sheet name
// supplies the tipo/fabricante metadata and the provenance field.
func Parse(sheetName string, rows [][]string) []model.Piece {
	if len(rows) == 0 {
		return nil
	}

	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil
	}

	headers := make([]string, len(rows[headerIdx]))
	for i, cell := range rows[headerIdx] {
		headers[i] = strings.TrimSpace(cell)
	}

	tipo, fabricante := ExtractTipoFabricante(sheetName)

	var pieces []model.Piece
	for _, row := range rows[headerIdx+1:] {
		rv := newRowValues(headers, row)

		piece := model.Piece{
			IDItem:         NormalizeValue(rv.lookup(aliasIDItem)),
			TextoBreve:     NormalizeValue(rv.lookup(aliasTextoBreve)),
			Tipo:           tipo,
			Fabricante:     fabricante,
			Cabeza:         NormalizeValue(rv.lookup(aliasCabeza)),
			ParteDivision:  NormalizeValue(rv.lookup(aliasParteDivision)),
			Cuerpo:         NormalizeValue(rv.lookup(aliasCuerpo)),
			Tramo:          NormalizeValue(rv.lookup(aliasTramo)),
			Posicion:       NormalizeValue(rv.lookup(aliasPosicion)),
			Descripcion:    NormalizeValue(rv.lookup(aliasDescripcion)),
			Long2Principal: NormalizeValue(rv.lookup(aliasLong2)),
			CantidadXTorre: ParseNumber(rv.lookup(aliasCantidad)),
			PesoUnitario:   ParseNumber(rv.lookup(aliasPeso)),
			Plano:          NormalizeValue(rv.lookup(aliasPlano)),
			ModPlano:       NormalizeValue(rv.lookup(aliasModPlano)),
			HojaOrigen:     sheetName,
		}
		if piece.Tipo == "" {
			piece.Tipo = NormalizeValue(rv.lookup(aliasTipo))
		}
		if piece.Fabricante == "" {
			piece.Fabricante = NormalizeValue(rv.lookup(aliasFabricante))
		}

		if piece.HasMinimumData() {
			pieces = append(pieces, piece)
		}
	}

	return pieces
}
