package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// UploadExcel replaces the workbook source. The file is validated (extension,
// size, decodable, at least one sheet), written atomically over the local
// data file, then the cache is invalidated and pre-warmed.
func (s *Server) UploadExcel(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "No se proporcionó ningún archivo")
		return
	}
	defer file.Close()

	maxSize := int64(s.cfg.Upload.MaxSizeMB) * 1024 * 1024
	if header.Size > maxSize {
		fail(c, http.StatusBadRequest, fmt.Sprintf("El archivo supera el máximo de %d MB", s.cfg.Upload.MaxSizeMB))
		return
	}

	// Only the OOXML format decodes here; legacy .xls gets an honest
	// message instead of failing later as "invalid".
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == ".xls" {
		fail(c, http.StatusBadRequest, "El formato .xls no es compatible; convierta el archivo a .xlsx")
		return
	}
	if ext != ".xlsx" {
		fail(c, http.StatusBadRequest, "El archivo debe ser un Excel (.xlsx)")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		fail(c, http.StatusBadRequest, "Error al leer el archivo")
		return
	}

	wb, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		fail(c, http.StatusBadRequest, "El archivo no es un Excel válido")
		return
	}
	sheetCount := len(wb.GetSheetList())
	wb.Close()
	if sheetCount == 0 {
		fail(c, http.StatusBadRequest, "El archivo Excel no contiene hojas válidas")
		return
	}

	if err := s.replaceWorkbook(content); err != nil {
		s.log.Error("upload: workbook replace failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Error al guardar el archivo: "+err.Error())
		return
	}

	s.cache.Invalidate()
	data, err := s.cache.Dataset(c.Request.Context(), true)
	if err != nil {
		s.log.Error("upload: pre-warm reload failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Archivo guardado pero no se pudo recargar: "+err.Error())
		return
	}

	s.log.Info("workbook replaced",
		zap.String("file", header.Filename),
		zap.Int64("size", header.Size),
		zap.Int("sheets", sheetCount),
		zap.Int("records", len(data)))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Archivo actualizado exitosamente",
		"stats": gin.H{
			"uploadId":   uuid.NewString(),
			"fileName":   header.Filename,
			"fileSize":   fmt.Sprintf("%.2f KB", float64(header.Size)/1024),
			"path":       s.excelPath,
			"sheets":     sheetCount,
			"records":    len(data),
			"uploadedAt": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// replaceWorkbook writes the new workbook next to the target and renames it
// into place, so a concurrent reload never reads a half-written file.
func (s *Server) replaceWorkbook(content []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.excelPath), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.excelPath), ".upload-*.xlsx")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.excelPath); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
