package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for menu categories and products.
type catalogHandler struct {
	categoryService portssvc.CategorySvc
	productService  portssvc.ProductSvc
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(cs portssvc.CategorySvc, ps portssvc.ProductSvc) *catalogHandler {
	return &catalogHandler{
		categoryService: cs,
		productService:  ps,
	}
}

// registerCatalogRoutes registers routes related to the menu catalogue.
func registerCatalogRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvc, productService portssvc.ProductSvc) {
	h := newCatalogHandler(categoryService, productService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
	}
}

// createCategory godoc
// @Summary Create a menu category
// @Description Adds a category. Categories typed beverage feed the beverage-sales aggregate on range summaries.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.Response{data=dto.CategoryResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to create category"
// @Router /categories [post]
func (h *catalogHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, "Failed to create category", err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToCategoryResponse(category)))
}

// getCategory godoc
// @Summary Get a category by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Response{data=dto.CategoryResponse}
// @Failure 404 {object} dto.Response "Category not found"
// @Failure 500 {object} dto.Response "Failed to get category"
// @Router /categories/{id} [get]
func (h *catalogHandler) getCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get category", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToCategoryResponse(category)))
}

// listCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} dto.Response{data=[]dto.CategoryResponse}
// @Failure 500 {object} dto.Response "Failed to list categories"
// @Router /categories [get]
func (h *catalogHandler) listCategories(c *gin.Context) {
	limit, offset := pageParams(c)
	categories, err := h.categoryService.ListCategories(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, "Failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToListCategoryResponse(categories)))
}

// updateCategory godoc
// @Summary Update a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.CategoryResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 404 {object} dto.Response "Category not found"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to update category"
// @Router /categories/{id} [put]
func (h *catalogHandler) updateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, "Failed to update category", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToCategoryResponse(category)))
}

// createProduct godoc
// @Summary Create a product
// @Description Adds a sellable menu item priced in whole rupiah.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.Response{data=dto.ProductResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 404 {object} dto.Response "Category not found"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to create product"
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, "Failed to create product", err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToProductResponse(product)))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.Response{data=dto.ProductResponse}
// @Failure 404 {object} dto.Response "Product not found"
// @Failure 500 {object} dto.Response "Failed to get product"
// @Router /products/{id} [get]
func (h *catalogHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get product", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToProductResponse(product)))
}

// listProducts godoc
// @Summary List products
// @Tags catalog
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} dto.Response{data=[]dto.ProductResponse}
// @Failure 500 {object} dto.Response "Failed to list products"
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	limit, offset := pageParams(c)
	products, err := h.productService.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, "Failed to list products", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToListProductResponse(products)))
}

// updateProduct godoc
// @Summary Update a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.ProductResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 404 {object} dto.Response "Product or category not found"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to update product"
// @Router /products/{id} [put]
func (h *catalogHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, "Failed to update product", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToProductResponse(product)))
}
