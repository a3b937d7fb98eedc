package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

// UserHandler handles admin-area account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=admin editor"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]userResponse, 0, len(users))
	for _, u := range users {
		data = append(data, userResponse{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	return c.JSON(http.StatusOK, data)
}

// Create handles POST /api/admin/users.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Role: user.Role})
}

// Delete handles DELETE /api/admin/users/:id. Deleting your own account is
// rejected so an admin cannot strand an authenticated session.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if userID == c.Param("id") {
		return echo.NewHTTPError(http.StatusConflict, "cannot delete the account you are logged in as")
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword handles PUT /api/admin/users/:id/password. Admins may set
// any account's password; editors only their own.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, _, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && userID != c.Param("id") {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.ChangePassword(c.Request().Context(), c.Param("id"), req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
