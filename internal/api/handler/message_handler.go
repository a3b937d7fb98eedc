package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/huaxing/corpsite-api/internal/api/metrics"
	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type submitMessageRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Content string `json:"content" validate:"required,max=5000"`
}

type submitMessageResponse struct {
	Reference string `json:"reference"`
}

type replyMessageRequest struct {
	Reply string `json:"reply" validate:"required,max=5000"`
}

type listMessagesResponse struct {
	Data       []domain.Message   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Submit handles POST /api/messages, the public contact form.
//
// @Summary      Submit an inquiry
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      submitMessageRequest  true  "Inquiry"
// @Success      201   {object}  submitMessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/messages [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req submitMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	message, err := h.service.Submit(c.Request().Context(), ports.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, submitMessageResponse{Reference: message.Reference})
}

// List handles GET /api/admin/messages.
//
// @Summary      List inquiries
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (new, read, replied)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Success      200     {object}  listMessagesResponse
// @Router       /api/admin/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.MessageFilter{
		Status: domain.MessageStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	data := result.Messages
	if data == nil {
		data = []domain.Message{}
	}
	return c.JSON(http.StatusOK, listMessagesResponse{
		Data:       data,
		Pagination: paginate(result.Total, result.Page, result.Limit),
	})
}

// MarkRead handles PUT /api/admin/messages/:id/read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	message, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message)
}

// Reply handles PUT /api/admin/messages/:id/reply.
//
// @Summary      Reply to an inquiry
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Message ID"
// @Param        body  body      replyMessageRequest  true  "Reply text"
// @Success      200   {object}  domain.Message
// @Failure      422   {object}  map[string]string
// @Router       /api/admin/messages/{id}/reply [put]
func (h *MessageHandler) Reply(c echo.Context) error {
	var req replyMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	message, err := h.service.Reply(c.Request().Context(), c.Param("id"), req.Reply)
	if err != nil {
		return err
	}

	metrics.MessagesRepliedTotal.Inc()
	return c.JSON(http.StatusOK, message)
}

// Delete handles DELETE /api/admin/messages/:id.
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
