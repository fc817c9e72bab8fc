package api

import (
	"net/http"

	"gocorr/domain/core"
	"gocorr/domain/series"
	"gocorr/internal/errors"
	"gocorr/ports"

	"github.com/gin-gonic/gin"
)

// PairRequest is the body of POST /api/v1/pair
type PairRequest struct {
	Keys    []string    `json:"keys"`
	Data    [][]float64 `json:"data" binding:"required"`
	Weights []float64   `json:"weights" binding:"required"`
}

// PairHandler exposes the pair finder over HTTP
type PairHandler struct {
	finder ports.PairFinderPort
}

// NewPairHandler creates a new pair handler
func NewPairHandler(finder ports.PairFinderPort) *PairHandler {
	return &PairHandler{finder: finder}
}

// RegisterRoutes mounts the handler's routes on router
func (h *PairHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/healthz", h.Health)
	v1 := router.Group("/api/v1")
	v1.POST("/pair", h.FindPair)
}

// Health reports liveness
func (h *PairHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// FindPair analyzes the posted matrix and returns the report
func (h *PairHandler) FindPair(c *gin.Context) {
	var req PairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errors.CodeInvalidInput})
		return
	}

	input := &series.Input{
		Data:    series.Matrix(req.Data),
		Weights: series.Weights(req.Weights),
		Source:  "http",
	}
	for _, k := range req.Keys {
		input.Keys = append(input.Keys, core.SeriesKey(k))
	}

	report, err := h.finder.Find(c.Request.Context(), input)
	if err != nil {
		code := errors.GetCode(err)
		status := http.StatusInternalServerError
		if errors.IsInputCode(code) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "code": code})
		return
	}

	c.JSON(http.StatusOK, report)
}

// NewRouter builds a gin engine with the pair routes mounted
func NewRouter(finder ports.PairFinderPort, mode string) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	NewPairHandler(finder).RegisterRoutes(router)
	return router
}
