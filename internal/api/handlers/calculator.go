package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/pillar-calculator/internal/api/models"
	"github.com/rpgo/pillar-calculator/internal/calculation"
	"github.com/rpgo/pillar-calculator/internal/config"
	"github.com/rpgo/pillar-calculator/internal/domain"
	"github.com/rpgo/pillar-calculator/internal/output"
)

// CalculatorHandler handles projection and comparison requests.
// Requests share no state.
type CalculatorHandler struct {
	engine *calculation.CalculationEngine
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(engine *calculation.CalculationEngine) *CalculatorHandler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &CalculatorHandler{engine: engine}
}

// Project handles POST /api/v1/projection
func (h *CalculatorHandler) Project(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	var (
		series domain.ProjectionSeries
		err    error
	)
	if len(req.Contributions) > 0 {
		series, err = h.engine.RunSchedule(c.Request.Context(), *req.Rate, req.InitialInvestment, req.Contributions)
	} else {
		series, err = h.engine.RunProjection(c.Request.Context(), *req.Rate, req.InitialInvestment, req.AnnualContribution, req.Years)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProjectionResponse{Rows: series, FinalValue: series.FinalValue()})
}

// Compare handles POST /api/v1/compare
func (h *CalculatorHandler) Compare(c *gin.Context) {
	req, ok := bindScenario(c)
	if !ok {
		return
	}
	cmp, err := h.run(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	currency := cmp.CurrencyOrDefault()
	c.JSON(http.StatusOK, models.CompareResponse{
		Comparison: cmp,
		Display: models.DisplaySummary{
			Direct:     currency + " " + output.FormatWhole(cmp.Summary.DirectFinalValue),
			Account:    currency + " " + output.FormatWhole(cmp.Summary.AccountFinalValue),
			Winner:     cmp.Summary.Winner.Title(),
			Conclusion: output.ConclusionLines(cmp),
		},
	})
}

// Sensitivity handles POST /api/v1/sensitivity
func (h *CalculatorHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, err)
		return
	}
	returns, err := calculation.ReturnRange(req.Range())
	if err != nil {
		respondError(c, err)
		return
	}
	points, err := h.engine.RunSensitivity(c.Request.Context(), req.Inputs(), returns)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SensitivityResponse{Points: points})
}

// Report handles POST /api/v1/report/:format
func (h *CalculatorHandler) Report(c *gin.Context) {
	f, err := output.Lookup(c.Param("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	req, ok := bindScenario(c)
	if !ok {
		return
	}
	cmp, err := h.run(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := f.Format(cmp)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, output.ContentType(f), data)
}

// Defaults handles GET /api/v1/defaults
func (h *CalculatorHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, config.DefaultConfiguration())
}

// Formats handles GET /api/v1/formats
func (h *CalculatorHandler) Formats(c *gin.Context) {
	c.JSON(http.StatusOK, models.FormatsResponse{
		Formats: output.AvailableFormatterNames(),
		Aliases: output.AvailableFormatAliases(),
	})
}

func (h *CalculatorHandler) run(c *gin.Context, req models.ScenarioRequest) (*domain.Comparison, error) {
	cmp, err := h.engine.RunComparison(c.Request.Context(), req.Inputs())
	if err != nil {
		return nil, err
	}
	cmp.Currency = req.CurrencyOrDefault()
	return cmp, nil
}

// bindScenario decodes the optional scenario body; an empty body means defaults.
func bindScenario(c *gin.Context) (models.ScenarioRequest, bool) {
	var req models.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, err)
		return req, false
	}
	return req, true
}
