package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/SscSPs/jewellery_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for category charges, materials and jewelry items.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{
		catalogService: cs,
	}
}

// registerCatalogRoutes registers routes related to the catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	categories := rg.Group("/categories")
	{
		categories.PUT("/:code/charges", h.upsertCategoryCharges)
		categories.GET("/:code/charges", h.getCategoryCharges)
	}

	materials := rg.Group("/materials")
	{
		materials.POST("", h.createMaterial)
		materials.GET("", h.listMaterials)
	}

	jewelry := rg.Group("/jewelry")
	{
		jewelry.POST("", h.createJewelryItem)
		jewelry.GET("/:code", h.getJewelryItem)
	}
}

// upsertCategoryCharges godoc
// @Summary Set category charges
// @Description Creates or replaces the default wastage, making and certification charges of a category
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   code path string true "Category code (leading letters of item codes, e.g. RG)"
// @Param   charges body dto.CategoryChargesRequest true "Charges"
// @Param   X-Operator header string false "Operator name recorded in the audit fields"
// @Success 200 {object} dto.CategoryChargesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to save category charges"
// @Router /categories/{code}/charges [put]
func (h *catalogHandler) upsertCategoryCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CategoryChargesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "UpsertCategoryCharges", err)
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	logger = logger.With(slog.String("category_code", c.Param("code")), slog.String("operator", operator))

	charges, err := h.catalogService.UpsertCategoryCharges(c.Request.Context(), c.Param("code"), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to save category charges")
		return
	}

	logger.Info("Category charges saved")
	c.JSON(http.StatusOK, dto.ToCategoryChargesResponse(charges))
}

// getCategoryCharges godoc
// @Summary Get category charges
// @Tags catalog
// @Produce  json
// @Param   code path string true "Category code"
// @Success 200 {object} dto.CategoryChargesResponse
// @Failure 404 {object} dto.ErrorResponse "Charges not configured"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve category charges"
// @Router /categories/{code}/charges [get]
func (h *catalogHandler) getCategoryCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_code", c.Param("code")))

	charges, err := h.catalogService.GetCategoryCharges(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve category charges")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryChargesResponse(charges))
}

// createMaterial godoc
// @Summary Create a material
// @Description Adds a stone or material to the master list. Materials in the Diamond category count towards certified carats.
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   material body dto.CreateMaterialRequest true "Material details"
// @Param   X-Operator header string false "Operator name recorded in the audit fields"
// @Success 201 {object} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Material code already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create material"
// @Router /materials [post]
func (h *catalogHandler) createMaterial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "CreateMaterial", err)
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	logger = logger.With(slog.String("operator", operator))

	material, err := h.catalogService.CreateMaterial(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to create material")
		return
	}

	logger.Info("Material created successfully", slog.String("material_code", material.Code))
	c.JSON(http.StatusCreated, dto.ToMaterialResponse(material))
}

// listMaterials godoc
// @Summary List materials
// @Tags catalog
// @Produce  json
// @Param   category query string false "Only materials of this category"
// @Success 200 {array} dto.MaterialResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list materials"
// @Router /materials [get]
func (h *catalogHandler) listMaterials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	materials, err := h.catalogService.ListMaterials(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, logger, err, "Failed to list materials")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMaterialResponse(materials))
}

// createJewelryItem godoc
// @Summary Create a jewelry item
// @Description Adds a finished piece to the catalog. Net weight is derived from gross weight and stones when omitted.
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateJewelryItemRequest true "Item details"
// @Param   X-Operator header string false "Operator name recorded in the audit fields"
// @Success 201 {object} dto.JewelryItemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Item code already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create jewelry item"
// @Router /jewelry [post]
func (h *catalogHandler) createJewelryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJewelryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "CreateJewelryItem", err)
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	logger = logger.With(slog.String("operator", operator), slog.String("item_code", req.Code))

	item, err := h.catalogService.CreateJewelryItem(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to create jewelry item")
		return
	}

	logger.Info("Jewelry item created successfully", slog.Int("stones", len(item.Stones)))
	c.JSON(http.StatusCreated, dto.ToJewelryItemResponse(item))
}

// getJewelryItem godoc
// @Summary Get a jewelry item
// @Tags catalog
// @Produce  json
// @Param   code path string true "Item code"
// @Success 200 {object} dto.JewelryItemResponse
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve jewelry item"
// @Router /jewelry/{code} [get]
func (h *catalogHandler) getJewelryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_code", c.Param("code")))

	item, err := h.catalogService.GetJewelryItem(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve jewelry item")
		return
	}
	c.JSON(http.StatusOK, dto.ToJewelryItemResponse(item))
}
