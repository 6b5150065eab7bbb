// Package http exposes the gridding operation over HTTP.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go.ngs.io/sphgrid/internal/domain"
	"go.ngs.io/sphgrid/internal/gmt"
	"go.ngs.io/sphgrid/internal/usecase"
)

// Handler handles HTTP requests for spherical gridding.
type Handler struct {
	gridder *usecase.Gridder
}

// NewHandler creates a new HTTP handler.
func NewHandler(gridder *usecase.Gridder) *Handler {
	return &Handler{gridder: gridder}
}

// InterpolateRequest is the JSON body for POST /v1/grids/sphinterpolate.
type InterpolateRequest struct {
	// Points are [lon, lat, value] rows.
	Points [][]float64 `json:"points" binding:"required"`

	Increment []float64 `json:"increment,omitempty"`
	Region    []float64 `json:"region,omitempty"`
	Verbose   bool      `json:"verbose,omitempty"`
}

// GridResponse is the JSON form of a result grid.
type GridResponse struct {
	RequestID string          `json:"request_id"`
	Lon       []float64       `json:"lon"`
	Lat       []float64       `json:"lat"`
	Values    [][]float64     `json:"values"`
	Meta      domain.Metadata `json:"meta"`
}

// Interpolate handles POST /v1/grids/sphinterpolate.
func (h *Handler) Interpolate(c *gin.Context) {
	var req InterpolateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	opts := gmt.Options{}
	if len(req.Increment) > 0 {
		opts["increment"] = req.Increment
	}
	if len(req.Region) > 0 {
		opts["region"] = req.Region
	}
	if req.Verbose {
		opts["verbose"] = true
	}

	grid, err := h.gridder.SphInterpolate(req.Points, opts)
	if err != nil {
		status := http.StatusInternalServerError
		var invalidErr *gmt.InvalidInputError
		var moduleErr *gmt.ModuleError
		switch {
		case errors.As(err, &invalidErr):
			status = http.StatusBadRequest
		case errors.As(err, &moduleErr):
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, GridResponse{
		RequestID: RequestID(c),
		Lon:       grid.Lon,
		Lat:       grid.Lat,
		Values:    grid.Values,
		Meta:      grid.Meta(),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
