package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huaxing/corpsite-api/internal/core/ports"
)

// SettingsHandler handles site-wide settings.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type updateSettingsRequest struct {
	SiteNameZH        string `json:"site_name_zh" validate:"required"`
	SiteNameEN        string `json:"site_name_en"`
	SiteDescriptionZH string `json:"site_description_zh"`
	SiteDescriptionEN string `json:"site_description_en"`
	ContactEmail      string `json:"contact_email" validate:"omitempty,email"`
	ICPNumber         string `json:"icp_number"`
}

// GetPublic handles GET /api/settings with the localized public subset.
func (h *SettingsHandler) GetPublic(c echo.Context) error {
	settings, err := h.service.GetPublic(c.Request().Context(), c.QueryParam("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Get handles GET /api/admin/settings and returns the full document.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PUT /api/admin/settings.
//
// @Summary      Update site settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateSettingsRequest  true  "Settings"
// @Success      200   {object}  domain.Settings
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	settings, err := h.service.Update(c.Request().Context(), ports.UpdateSettingsInput{
		SiteNameZH:        req.SiteNameZH,
		SiteNameEN:        req.SiteNameEN,
		SiteDescriptionZH: req.SiteDescriptionZH,
		SiteDescriptionEN: req.SiteDescriptionEN,
		ContactEmail:      req.ContactEmail,
		ICPNumber:         req.ICPNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
