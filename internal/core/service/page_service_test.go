package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub page repository
// ---------------------------------------------------------------------------

type stubPageRepo struct {
	byKey map[string]*domain.Page
}

func newStubPageRepo() *stubPageRepo {
	return &stubPageRepo{byKey: make(map[string]*domain.Page)}
}

func (r *stubPageRepo) FindByKey(_ context.Context, pageKey string) (*domain.Page, error) {
	p, ok := r.byKey[pageKey]
	if !ok {
		return nil, domain.ErrPageNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPageRepo) List(_ context.Context) ([]domain.Page, error) {
	pages := make([]domain.Page, 0, len(r.byKey))
	for _, p := range r.byKey {
		pages = append(pages, *p)
	}
	return pages, nil
}

func (r *stubPageRepo) Upsert(_ context.Context, page *domain.Page) (*domain.Page, error) {
	clone := *page
	if existing, ok := r.byKey[page.PageKey]; ok {
		clone.ID = existing.ID
	} else {
		clone.ID = "page-" + page.PageKey
	}
	r.byKey[page.PageKey] = &clone
	result := clone
	return &result, nil
}

func TestPageService_Update_UpsertsByKey(t *testing.T) {
	svc := NewPageService(newStubPageRepo(), zerolog.Nop())

	created, err := svc.Update(context.Background(), ports.UpdatePageInput{
		PageKey: "about",
		TitleZH: "关于我们",
		TitleEN: "About Us",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("first update must create the page")
	}

	updated, err := svc.Update(context.Background(), ports.UpdatePageInput{
		PageKey: "about",
		TitleZH: "公司简介",
		TitleEN: "About Us",
	})
	if err != nil {
		t.Fatalf("second Update returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("upsert must keep the identity, got %s and %s", created.ID, updated.ID)
	}
	if updated.TitleZH != "公司简介" {
		t.Fatalf("title not updated: %q", updated.TitleZH)
	}
}

func TestPageService_GetLocalized(t *testing.T) {
	repo := newStubPageRepo()
	_, _ = repo.Upsert(context.Background(), &domain.Page{
		PageKey:   "about",
		TitleZH:   "关于我们",
		TitleEN:   "About Us",
		ContentZH: "中文内容",
		ContentEN: "English content",
	})
	svc := NewPageService(repo, zerolog.Nop())

	zh, err := svc.GetLocalized(context.Background(), "about", "zh")
	if err != nil {
		t.Fatalf("GetLocalized returned error: %v", err)
	}
	if zh.Title != "关于我们" || zh.Language != domain.LangZH {
		t.Fatalf("unexpected zh view: %+v", zh)
	}

	en, err := svc.GetLocalized(context.Background(), "about", "en")
	if err != nil {
		t.Fatalf("GetLocalized returned error: %v", err)
	}
	if en.Title != "About Us" || en.Content != "English content" {
		t.Fatalf("unexpected en view: %+v", en)
	}

	// Unknown languages collapse to Chinese.
	other, err := svc.GetLocalized(context.Background(), "about", "fr")
	if err != nil {
		t.Fatalf("GetLocalized returned error: %v", err)
	}
	if other.Language != domain.LangZH || other.Title != "关于我们" {
		t.Fatalf("unexpected fallback view: %+v", other)
	}
}

func TestPageService_GetLocalized_FallsBackToChinese(t *testing.T) {
	repo := newStubPageRepo()
	_, _ = repo.Upsert(context.Background(), &domain.Page{
		PageKey:   "culture",
		TitleZH:   "企业文化",
		ContentZH: "中文内容",
	})
	svc := NewPageService(repo, zerolog.Nop())

	en, err := svc.GetLocalized(context.Background(), "culture", "en")
	if err != nil {
		t.Fatalf("GetLocalized returned error: %v", err)
	}
	if en.Title != "企业文化" || en.Content != "中文内容" {
		t.Fatalf("missing translation must fall back to Chinese: %+v", en)
	}
}

func TestPageService_GetLocalized_NotFound(t *testing.T) {
	svc := NewPageService(newStubPageRepo(), zerolog.Nop())

	if _, err := svc.GetLocalized(context.Background(), "missing", "zh"); !errors.Is(err, domain.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}
