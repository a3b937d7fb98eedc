package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/huaxing/corpsite-api/internal/api/metrics"
	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	NameZH        string  `json:"name_zh"        validate:"required"`
	NameEN        string  `json:"name_en"`
	DescriptionZH string  `json:"description_zh" validate:"required"`
	DescriptionEN string  `json:"description_en"`
	Category      string  `json:"category"       validate:"required"`
	Price         float64 `json:"price"          validate:"gte=0"`
	ImageURL      string  `json:"image_url"`
}

// productSummaryResponse is the localized public list item.
type productSummaryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type listProductsResponse struct {
	Data       []productSummaryResponse `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}

func (h *ProductHandler) input(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		NameZH:        req.NameZH,
		NameEN:        req.NameEN,
		DescriptionZH: req.DescriptionZH,
		DescriptionEN: req.DescriptionEN,
		Category:      req.Category,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
	}
}

// ListPublic handles GET /api/products, the localized catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        lang      query     string  false  "Language (zh or en, default zh)"
// @Param        category  query     string  false  "Filter by category"
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 20, max 100)"
// @Success      200       {object}  listProductsResponse
// @Router       /api/products [get]
func (h *ProductHandler) ListPublic(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	lang := domain.NormalizeLang(c.QueryParam("lang"))

	result, err := h.service.List(c.Request().Context(), ports.ProductFilter{
		Category: c.QueryParam("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	data := make([]productSummaryResponse, 0, len(result.Products))
	for i := range result.Products {
		p := &result.Products[i]
		name, description := p.Localized(lang)
		data = append(data, productSummaryResponse{
			ID:          p.ID,
			Name:        name,
			Description: description,
			Category:    p.Category,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
		})
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Data:       data,
		Pagination: paginate(result.Total, result.Page, result.Limit),
	})
}

// GetPublic handles GET /api/products/:id.
func (h *ProductHandler) GetPublic(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	lang := domain.NormalizeLang(c.QueryParam("lang"))
	name, description := product.Localized(lang)
	return c.JSON(http.StatusOK, productSummaryResponse{
		ID:          product.ID,
		Name:        name,
		Description: description,
		Category:    product.Category,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
	})
}

// GetAdmin handles GET /api/admin/products/:id with both languages.
func (h *ProductHandler) GetAdmin(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ListAdmin handles GET /api/admin/products with both languages, for editing.
func (h *ProductHandler) ListAdmin(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ProductFilter{
		Category: c.QueryParam("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":       result.Products,
		"pagination": paginate(result.Total, result.Page, result.Limit),
	})
}

// Create handles POST /api/admin/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), h.input(req))
	if err != nil {
		return err
	}

	metrics.ProductsMutatedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), h.input(req))
	if err != nil {
		return err
	}

	metrics.ProductsMutatedTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductsMutatedTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}
