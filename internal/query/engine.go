// Package query serves filtered option lists and bounded search results.
// All operations are pure reads over the published dataset slice.
package query

import (
	"sort"
	"strings"

	"desglose/internal/model"
)

// SearchLimit caps search results; callers needing more must narrow filters.
const SearchLimit = 500

// Options applies the conjunctive filters, then collects the sorted distinct
// non-sentinel values of the six filterable fields.
func Options(data []model.Piece, f model.OptionsFilters) model.Options {
	tipo := make(map[string]struct{})
	fabricante := make(map[string]struct{})
	cabeza := make(map[string]struct{})
	cuerpo := make(map[string]struct{})
	parte := make(map[string]struct{})
	tramo := make(map[string]struct{})

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
		if f.Tramo != "" && p.Tramo != f.Tramo {
			continue
		}

		collect(tipo, p.Tipo)
		collect(fabricante, p.Fabricante)
		collect(cabeza, p.Cabeza)
		collect(cuerpo, p.Cuerpo)
		collect(parte, p.ParteDivision)
		collect(tramo, p.Tramo)
	}

	return model.Options{
		Tipo:          sorted(tipo),
		Fabricante:    sorted(fabricante),
		Cabeza:        sorted(cabeza),
		Cuerpo:        sorted(cuerpo),
		ParteDivision: sorted(parte),
		Tramo:         sorted(tramo),
	}
}

// Search applies up to six exact-match filters (tramo case-insensitively)
// and returns at most SearchLimit pieces in dataset order.
func Search(data []model.Piece, f model.SearchFilters) []model.Piece {
	tramoLower := strings.ToLower(f.Tramo)

	results := make([]model.Piece, 0, 64)
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
		if f.Parte != "" && p.ParteDivision != f.Parte {
			continue
		}
		if f.Cuerpo != "" && p.Cuerpo != f.Cuerpo {
			continue
		}
		if f.Tramo != "" && strings.ToLower(p.Tramo) != tramoLower {
			continue
		}

		results = append(results, *p)
		if len(results) == SearchLimit {
			break
		}
	}
	return results
}

func collect(set map[string]struct{}, value string) {
	if model.IsSet(value) {
		set[value] = struct{}{}
	}
}

func sorted(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
