package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/SscSPs/jewellery_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// estimateHandler handles HTTP requests for saved estimates and bills.
type estimateHandler struct {
	estimateService portssvc.EstimateSvcFacade
}

func newEstimateHandler(es portssvc.EstimateSvcFacade) *estimateHandler {
	return &estimateHandler{
		estimateService: es,
	}
}

// registerEstimateRoutes registers routes related to estimates.
func registerEstimateRoutes(rg *gin.RouterGroup, estimateService portssvc.EstimateSvcFacade) {
	h := newEstimateHandler(estimateService)

	estimates := rg.Group("/estimates")
	{
		estimates.POST("", h.saveEstimate)
		estimates.GET("", h.listEstimates)
		estimates.GET("/export.xlsx", h.exportEstimates)
		estimates.GET("/:id", h.getEstimate)
		estimates.GET("/:id/bill.pdf", h.renderBill)
	}
}

// saveEstimate godoc
// @Summary Save an estimate or bill
// @Description Prices the submitted quote on the server and stores the rounded result with the customer details
// @Tags estimates
// @Accept  json
// @Produce  json
// @Param   estimate body dto.SaveEstimateRequest true "Customer and quote"
// @Param   X-Operator header string false "Operator name recorded in the audit fields"
// @Success 201 {object} dto.EstimateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 422 {object} dto.ErrorResponse "A required rate is missing or zero"
// @Failure 500 {object} dto.ErrorResponse "Failed to save estimate"
// @Router /estimates [post]
func (h *estimateHandler) saveEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "SaveEstimate", err)
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	logger = logger.With(slog.String("operator", operator), slog.String("kind", req.Kind))

	estimate, err := h.estimateService.SaveEstimate(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to save estimate")
		return
	}

	logger.Info("Estimate saved successfully",
		slog.String("estimate_id", estimate.EstimateID),
		slog.String("number", estimate.Number),
	)
	c.JSON(http.StatusCreated, dto.ToEstimateResponse(estimate))
}

// getEstimate godoc
// @Summary Get an estimate
// @Tags estimates
// @Produce  json
// @Param   id path string true "Estimate ID"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid estimate ID"
// @Failure 404 {object} dto.ErrorResponse "Estimate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve estimate"
// @Router /estimates/{id} [get]
func (h *estimateHandler) getEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("estimate_id", c.Param("id")))

	estimate, err := h.estimateService.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve estimate")
		return
	}
	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

// listEstimates godoc
// @Summary List estimates
// @Description Lists saved estimates newest first. Pass nextToken from the previous page to continue.
// @Tags estimates
// @Produce  json
// @Param   kind query string false "ESTIMATE or BILL"
// @Param   from query string false "From date (YYYY-MM-DD)"
// @Param   to query string false "To date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEstimatesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters or token"
// @Failure 500 {object} dto.ErrorResponse "Failed to list estimates"
// @Router /estimates [get]
func (h *estimateHandler) listEstimates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEstimatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "ListEstimates", err)
		return
	}

	resp, err := h.estimateService.ListEstimates(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list estimates")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// exportEstimates godoc
// @Summary Export estimates
// @Description Downloads the matching estimates as an Excel workbook
// @Tags estimates
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   kind query string false "ESTIMATE or BILL"
// @Param   from query string false "From date (YYYY-MM-DD)"
// @Param   to query string false "To date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to export estimates"
// @Router /estimates/export.xlsx [get]
func (h *estimateHandler) exportEstimates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ExportEstimatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "ExportEstimates", err)
		return
	}

	data, err := h.estimateService.ExportEstimates(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to export estimates")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="estimates.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

// renderBill godoc
// @Summary Print a bill
// @Description Renders a saved estimate or bill as a PDF
// @Tags estimates
// @Produce  application/pdf
// @Param   id path string true "Estimate ID"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid estimate ID"
// @Failure 404 {object} dto.ErrorResponse "Estimate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to render bill"
// @Router /estimates/{id}/bill.pdf [get]
func (h *estimateHandler) renderBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("estimate_id", c.Param("id")))

	data, err := h.estimateService.RenderBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to render bill")
		return
	}

	c.Header("Content-Disposition", `inline; filename="bill-`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, contentTypePDF, data)
}
