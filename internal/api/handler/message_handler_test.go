package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

type stubMessageService struct {
	submitFn func(ctx context.Context, input ports.SubmitMessageInput) (*domain.Message, error)
	listFn   func(ctx context.Context, filter ports.MessageFilter) (*ports.MessagePage, error)
}

func (s *stubMessageService) Submit(ctx context.Context, input ports.SubmitMessageInput) (*domain.Message, error) {
	return s.submitFn(ctx, input)
}

func (s *stubMessageService) List(ctx context.Context, filter ports.MessageFilter) (*ports.MessagePage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubMessageService) MarkRead(context.Context, string) (*domain.Message, error) {
	return nil, nil
}

func (s *stubMessageService) Reply(context.Context, string, string) (*domain.Message, error) {
	return nil, nil
}

func (s *stubMessageService) Delete(context.Context, string) error {
	return nil
}

func TestMessageHandler_Submit_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewMessageHandler(&stubMessageService{
		submitFn: func(_ context.Context, input ports.SubmitMessageInput) (*domain.Message, error) {
			if input.Name != "visitor" || input.Email != "v@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Message{Reference: "ref-123", Status: domain.MessageNew}, nil
		},
	})

	body := strings.NewReader(`{"name":"visitor","email":"v@example.com","content":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/messages", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["reference"] != "ref-123" {
		t.Fatalf("reference missing: %v", resp)
	}
}

func TestMessageHandler_Submit_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	handler := NewMessageHandler(&stubMessageService{
		submitFn: func(context.Context, ports.SubmitMessageInput) (*domain.Message, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"name":"visitor","email":"not-an-email","content":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/messages", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMessageHandler_List_EmptyPageIsArray(t *testing.T) {
	e := newTestEcho()
	handler := NewMessageHandler(&stubMessageService{
		listFn: func(_ context.Context, filter ports.MessageFilter) (*ports.MessagePage, error) {
			if filter.Status != domain.MessageNew {
				t.Fatalf("status filter not passed: %q", filter.Status)
			}
			return &ports.MessagePage{Messages: nil, Total: 0, Page: 1, Limit: 20}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages?status=new", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty page must serialize as an array: %s", rec.Body.String())
	}
}
