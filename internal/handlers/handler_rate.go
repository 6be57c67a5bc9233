package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/SscSPs/jewellery_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to daily rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to daily rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.recordRate)
		rates.GET("", h.listRates)
		rates.GET("/today", h.getTodaySnapshot)
		rates.GET("/:type/:date", h.getRate)
	}
}

// recordRate godoc
// @Summary Record a daily rate
// @Description Records the gold, dollar or tax rate for a date. Gold may be given per gram or per 10 grams and is stored per gram. A rate is recorded once per type and date.
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.RecordRateRequest true "Rate details"
// @Param   X-Operator header string false "Operator name recorded in the audit fields"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Rate already recorded for the date"
// @Failure 500 {object} dto.ErrorResponse "Failed to record rate"
// @Router /rates [post]
func (h *rateHandler) recordRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "RecordRate", err)
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	logger = logger.With(slog.String("operator", operator))
	logger.Info("Received request to record rate",
		slog.String("rate_type", req.RateType),
		slog.String("date_effective", req.DateEffective),
	)

	rate, err := h.rateService.RecordRate(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to record rate")
		return
	}

	logger.Info("Rate recorded successfully", slog.String("rate_id", rate.RateID))
	c.JSON(http.StatusCreated, dto.ToRateResponse(rate))
}

// getTodaySnapshot godoc
// @Summary Get today's rates
// @Description Returns the rates recorded for today in the business timezone and lists the ones still missing
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateSnapshotResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve rates"
// @Router /rates/today [get]
func (h *rateHandler) getTodaySnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.rateService.GetTodaySnapshot(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve today's rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(snapshot))
}

// getRate godoc
// @Summary Get a rate
// @Description Retrieves the rate of one type recorded for a date
// @Tags rates
// @Produce  json
// @Param   type path string true "Rate type" Enums(GOLD_24K, USD_INR, GST, CUSTOMS_DUTY, STATE_TAX)
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid rate type or date"
// @Failure 404 {object} dto.ErrorResponse "Rate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve rate"
// @Router /rates/{type}/{date} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("rate_type", c.Param("type")),
		slog.String("date", c.Param("date")),
	)

	rate, err := h.rateService.GetRate(c.Request.Context(), c.Param("type"), c.Param("date"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// listRates godoc
// @Summary List rates
// @Description Lists recorded rates, newest date first
// @Tags rates
// @Produce  json
// @Param   type query string false "Rate type"
// @Param   from query string false "From date (YYYY-MM-DD)"
// @Param   to query string false "To date (YYYY-MM-DD)"
// @Param   limit query int false "Maximum number of rates" default(100)
// @Success 200 {array} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "ListRates", err)
		return
	}

	rates, err := h.rateService.ListRates(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}
