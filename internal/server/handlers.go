package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"desglose/internal/calculator"
	"desglose/internal/model"
	"desglose/internal/planos"
	"desglose/internal/query"
)

// queryParam reads a filter accepting both the historical upper-case query
// keys and lower-case ones.
func queryParam(c *gin.Context, upper, lower string) string {
	if v := c.Query(upper); v != "" {
		return v
	}
	return c.Query(lower)
}

// GetOptions returns the distinct values of each filterable field, narrowed
// by the supplied filters.
func (s *Server) GetOptions(c *gin.Context) {
	filters := model.OptionsFilters{
		Tipo:       queryParam(c, "TIPO", "tipo"),
		Fabricante: queryParam(c, "FABRICANTE", "fabricante"),
		Cabeza:     queryParam(c, "CABEZA", "cabeza"),
		Cuerpo:     queryParam(c, "CUERPO", "cuerpo"),
		Tramo:      queryParam(c, "TRAMO", "tramo"),
	}

	data, err := s.cache.Dataset(c.Request.Context(), false)
	if err != nil {
		s.log.Error("options: dataset unavailable", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Error interno del servidor al obtener opciones.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"options": query.Options(data, filters),
	})
}

// Search returns the pieces matching the filters, capped at the search limit.
func (s *Server) Search(c *gin.Context) {
	filters := model.SearchFilters{
		Tipo:       c.Query("tipo"),
		Fabricante: c.Query("fabricante"),
		Cabeza:     c.Query("cabeza"),
		Parte:      c.Query("parte"),
		Cuerpo:     c.Query("cuerpo"),
		Tramo:      c.Query("tramo"),
	}

	data, err := s.cache.Dataset(c.Request.Context(), false)
	if err != nil {
		s.log.Error("search: dataset unavailable", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Error interno del servidor al buscar datos.")
		return
	}

	results := query.Search(data, filters)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(results),
		"results": results,
	})
}

// calculateRequest is the POST /api/calculate body.
type calculateRequest struct {
	Filters model.CalcFilters     `json:"filters"`
	Parts   []model.PartSelection `json:"parts"`
}

// Calculate computes scaled material quantities for the selected parts.
func (s *Server) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if len(req.Parts) == 0 {
		fail(c, http.StatusBadRequest, "Debe seleccionar al menos una parte")
		return
	}

	data, err := s.cache.Dataset(c.Request.Context(), false)
	if err != nil {
		s.log.Error("calculate: dataset unavailable", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Error al calcular materiales: datos no disponibles")
		return
	}

	result := calculator.Calculate(data, req.Filters, req.Parts)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(result.Results),
		"results": result.Results,
		"totals":  result.Totals,
	})
}

// BuscarPlano resolves a drawing name to its public path.
func (s *Server) BuscarPlano(c *gin.Context) {
	name := c.Query("plano")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": `Parámetro "plano" requerido`})
		return
	}

	if url, ok := planos.Find(s.planosDir, name); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Plano no encontrado"})
}

// Debug force-reloads the dataset and reports its statistics.
func (s *Server) Debug(c *gin.Context) {
	data, err := s.cache.Dataset(c.Request.Context(), true)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	parts := distinct(data, func(p *model.Piece) string { return p.ParteDivision })
	tipos := distinct(data, func(p *model.Piece) string { return p.Tipo })
	fabricantes := distinct(data, func(p *model.Piece) string { return p.Fabricante })
	hojas := distinct(data, func(p *model.Piece) string { return p.HojaOrigen })

	var sample interface{}
	if len(data) > 0 {
		sample = data[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalDocuments":    len(data),
			"uniqueParts":       len(parts),
			"uniqueTipos":       len(tipos),
			"uniqueFabricantes": len(fabricantes),
			"uniqueHojas":       len(hojas),
			"parts":             parts,
			"tipos":             tipos,
			"fabricantes":       fabricantes,
			"hojas":             hojas,
		},
		"sample": sample,
	})
}

// CacheInfo returns the cache manager's state snapshot.
func (s *Server) CacheInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cache":   s.cache.Info(),
	})
}

// Status reports service health.
func (s *Server) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"version": Version,
		"uptime":  int(time.Since(s.startedAt).Seconds()),
		"cache":   s.cache.Info(),
	})
}

func distinct(data []model.Piece, key func(*model.Piece) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0, 16)
	for i := range data {
		v := key(&data[i])
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
