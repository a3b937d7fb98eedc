package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huaxing/corpsite-api/internal/api/metrics"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

// PageHandler handles HTTP requests for bilingual page content.
type PageHandler struct {
	service ports.PageService
}

func NewPageHandler(service ports.PageService) *PageHandler {
	return &PageHandler{service: service}
}

type updatePageRequest struct {
	TitleZH   string `json:"title_zh"   validate:"required"`
	TitleEN   string `json:"title_en"`
	ContentZH string `json:"content_zh" validate:"required"`
	ContentEN string `json:"content_en"`
}

// GetPublic handles GET /api/pages/:key, the localized public view.
//
// @Summary      Get a page in one language
// @Tags         pages
// @Produce      json
// @Param        key   path      string  true   "Page key (home, about, resources, culture, contact)"
// @Param        lang  query     string  false  "Language (zh or en, default zh)"
// @Success      200   {object}  ports.LocalizedPage
// @Failure      404   {object}  map[string]string
// @Router       /api/pages/{key} [get]
func (h *PageHandler) GetPublic(c echo.Context) error {
	page, err := h.service.GetLocalized(c.Request().Context(), c.Param("key"), c.QueryParam("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// List handles GET /api/admin/pages with all pages in both languages.
//
// @Summary      List pages
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Page
// @Router       /api/admin/pages [get]
func (h *PageHandler) List(c echo.Context) error {
	pages, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

// Get handles GET /api/admin/pages/:key with both languages.
func (h *PageHandler) Get(c echo.Context) error {
	page, err := h.service.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Update handles PUT /api/admin/pages/:key.
//
// @Summary      Update page content
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string             true  "Page key"
// @Param        body  body      updatePageRequest  true  "Page content"
// @Success      200   {object}  domain.Page
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/pages/{key} [put]
func (h *PageHandler) Update(c echo.Context) error {
	var req updatePageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	page, err := h.service.Update(c.Request().Context(), ports.UpdatePageInput{
		PageKey:   c.Param("key"),
		TitleZH:   req.TitleZH,
		TitleEN:   req.TitleEN,
		ContentZH: req.ContentZH,
		ContentEN: req.ContentEN,
	})
	if err != nil {
		return err
	}

	metrics.PagesUpdatedTotal.WithLabelValues(page.PageKey).Inc()
	return c.JSON(http.StatusOK, page)
}
