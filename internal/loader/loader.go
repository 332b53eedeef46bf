// Package loader resolves workbook bytes from a local file or a remote blob,
// decodes them with excelize and assembles the full in-memory dataset.
package loader

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"desglose/internal/model"
	"desglose/internal/parser"
)

// Loader orchestrates fetch, decode and per-sheet parsing.
type Loader struct {
	source Source
	log    *zap.Logger
}

// New creates a loader over the given source.
func New(source Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{source: source, log: log}
}

// Load fetches the workbook and flattens every sheet into one dataset,
// preserving sheet order and row order. Sheets without a recognizable header
// contribute nothing; a workbook with zero sheets is a decode failure.
func (l *Loader) Load(ctx context.Context) ([]model.Piece, error) {
	raw, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: l.source.Describe(), Err: err}
	}

	file, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &LoadError{Source: l.source.Describe(), Err: fmt.Errorf("%w: %v", ErrDecode, err)}
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Source: l.source.Describe(), Err: fmt.Errorf("%w: workbook has no sheets", ErrDecode)}
	}

	allPieces := make([]model.Piece, 0, 1024)
	for _, sheetName := range sheets {
		rows, err := file.GetRows(sheetName)
		if err != nil {
			l.log.Warn("skipping unreadable sheet",
				zap.String("sheet", sheetName), zap.Error(err))
			continue
		}

		pieces := parser.Parse(sheetName, rows)
		l.log.Debug("sheet parsed",
			zap.String("sheet", sheetName),
			zap.Int("rows", len(rows)),
			zap.Int("pieces", len(pieces)))
		allPieces = append(allPieces, pieces...)
	}

	l.log.Info("dataset loaded",
		zap.String("source", l.source.Describe()),
		zap.Int("sheets", len(sheets)),
		zap.Int("records", len(allPieces)))

	return allPieces, nil
}
