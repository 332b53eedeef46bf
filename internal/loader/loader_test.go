package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeTestWorkbook builds a small workbook on disk and returns its path.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "AJIKAWA (AC - HB)"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}

	header := []interface{}{"ID Item", "FABRICANTE", "Parte (Division)", "Cantidad x Torre", "Peso Unitario"}
	if err := f.SetSheetRow("AJIKAWA (AC - HB)", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}
	row := []interface{}{"M1", "AJIKAWA HB", "BSUP", "2", "5.5"}
	if err := f.SetSheetRow("AJIKAWA (AC - HB)", "A2", &row); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}

	// Segunda hoja sin encabezado reconocible: no aporta registros
	if _, err := f.NewSheet("NOTAS"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	notes := []interface{}{"comentarios sueltos"}
	if err := f.SetSheetRow("NOTAS", "A1", &notes); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "torres.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

// TestLoadLocalFile loads and flattens a workbook from disk
func TestLoadLocalFile(t *testing.T) {
	path := writeTestWorkbook(t)

	l := New(LocalFile{Path: path}, nil)
	pieces, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(pieces) != 1 {
		t.Fatalf("Load returned %d pieces, want 1", len(pieces))
	}

	p := pieces[0]
	if p.Tipo != "AC" {
		t.Errorf("Tipo = %q, want AC", p.Tipo)
	}
	if p.Fabricante != "AJIKAWA HB" {
		t.Errorf("Fabricante = %q, want AJIKAWA HB", p.Fabricante)
	}
	if p.CantidadXTorre != 2 {
		t.Errorf("CantidadXTorre = %v, want 2", p.CantidadXTorre)
	}
	if p.PesoUnitario != 5.5 {
		t.Errorf("PesoUnitario = %v, want 5.5", p.PesoUnitario)
	}
	if p.HojaOrigen != "AJIKAWA (AC - HB)" {
		t.Errorf("HojaOrigen = %q", p.HojaOrigen)
	}
}

// TestLoadMissingFile surfaces a typed source error
func TestLoadMissingFile(t *testing.T) {
	l := New(LocalFile{Path: filepath.Join(t.TempDir(), "no-existe.xlsx")}, nil)

	_, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error = %v, want ErrSourceUnavailable", err)
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error is not a *LoadError: %v", err)
	}
}

// TestLoadCorruptBytes surfaces a typed decode error
func TestLoadCorruptBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roto.xlsx")
	if err := os.WriteFile(path, []byte("esto no es un workbook"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l := New(LocalFile{Path: path}, nil)
	_, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("Load should fail for corrupt bytes")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}
