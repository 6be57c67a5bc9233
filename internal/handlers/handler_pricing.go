package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/SscSPs/jewellery_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingHandler handles HTTP requests that price items.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{
		pricingService: ps,
	}
}

// registerPricingRoutes registers routes related to pricing.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPricingHandler(pricingService)

	pricing := rg.Group("/pricing")
	{
		pricing.POST("/quote", h.quote)
		pricing.POST("/items/:code", h.priceItem)
		pricing.POST("/batch", h.batchPrice)
	}
}

// quote godoc
// @Summary Price an item
// @Description Prices an ad hoc item against today's rates. Manual rates only fill rates not yet recorded for today.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   quote body dto.QuoteRequest true "Item, charges and manual rates"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing pricing input"
// @Failure 422 {object} dto.ErrorResponse "A required rate is missing or zero"
// @Failure 500 {object} dto.ErrorResponse "Failed to price item"
// @Router /pricing/quote [post]
func (h *pricingHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Quote", err)
		return
	}

	logger = logger.With(slog.String("mode", req.Mode), slog.String("item_code", req.Item.Code))

	breakdown, err := h.pricingService.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to price item")
		return
	}

	logger.Debug("Quote computed", slog.String("grand_total", breakdown.GrandTotal.String()))
	c.JSON(http.StatusOK, dto.ToBreakdownResponse(breakdown))
}

// priceItem godoc
// @Summary Price a catalog item
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   code path string true "Item code"
// @Param   request body dto.PriceItemRequest true "Mode, overrides and manual rates"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing pricing input"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 422 {object} dto.ErrorResponse "A required rate is missing or zero"
// @Failure 500 {object} dto.ErrorResponse "Failed to price item"
// @Router /pricing/items/{code} [post]
func (h *pricingHandler) priceItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PriceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "PriceItem", err)
		return
	}

	logger = logger.With(slog.String("mode", req.Mode), slog.String("item_code", c.Param("code")))

	breakdown, err := h.pricingService.PriceItem(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to price item")
		return
	}
	c.JSON(http.StatusOK, dto.ToBreakdownResponse(breakdown))
}

// batchPrice godoc
// @Summary Price several catalog items
// @Description Prices every listed item with one set of rates. Items that cannot be priced carry their own error; the rest are still returned.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.BatchPriceRequest true "Mode, item codes and manual rates"
// @Success 200 {object} dto.BatchPriceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 500 {object} dto.ErrorResponse "Failed to price items"
// @Router /pricing/batch [post]
func (h *pricingHandler) batchPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "BatchPrice", err)
		return
	}

	results, err := h.pricingService.BatchPrice(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to price items")
		return
	}

	resp := dto.BatchPriceResponse{Results: make([]dto.BatchPriceItemResponse, len(results))}
	for i, r := range results {
		item := dto.BatchPriceItemResponse{ItemCode: r.ItemCode}
		if r.Err != nil {
			_, body := toErrorResponse(r.Err, "Failed to price item")
			item.Error = &body
		} else {
			breakdown := dto.ToBreakdownResponse(r.Breakdown)
			item.Breakdown = &breakdown
		}
		resp.Results[i] = item
	}
	c.JSON(http.StatusOK, resp)
}
