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
// In-memory stub settings repository
// ---------------------------------------------------------------------------

type stubSettingsRepo struct {
	stored *domain.Settings
	err    error
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.stored == nil {
		return &domain.Settings{}, nil
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, settings *domain.Settings) (*domain.Settings, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *settings
	r.stored = &clone
	out := clone
	return &out, nil
}

func seededSettings() *domain.Settings {
	return &domain.Settings{
		SiteNameZH:        "华兴科技",
		SiteNameEN:        "Huaxing Tech",
		SiteDescriptionZH: "工业自动化解决方案",
		SiteDescriptionEN: "Industrial automation solutions",
		ContactEmail:      "info@huaxing.example",
		ICPNumber:         "京ICP备12345678号",
	}
}

func TestSettingsService_GetEmptyStore(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, zerolog.Nop())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.SiteNameZH != "" || settings.ICPNumber != "" {
		t.Fatalf("empty store must yield zero-valued settings, got %+v", settings)
	}
}

func TestSettingsService_UpdateThenGet(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, zerolog.Nop())

	saved, err := svc.Update(context.Background(), ports.UpdateSettingsInput{
		SiteNameZH:        "华兴科技",
		SiteNameEN:        "Huaxing Tech",
		SiteDescriptionZH: "工业自动化解决方案",
		SiteDescriptionEN: "Industrial automation solutions",
		ContactEmail:      "info@huaxing.example",
		ICPNumber:         "京ICP备12345678号",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.UpdatedAt.IsZero() {
		t.Fatal("update must stamp updated_at")
	}

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SiteNameEN != "Huaxing Tech" {
		t.Errorf("unexpected site name: %s", got.SiteNameEN)
	}
	if got.ContactEmail != "info@huaxing.example" {
		t.Errorf("unexpected contact email: %s", got.ContactEmail)
	}
}

func TestSettingsService_UpdateRepositoryFailure(t *testing.T) {
	dbErr := errors.New("write concern error")
	svc := NewSettingsService(&stubSettingsRepo{err: dbErr}, zerolog.Nop())

	if _, err := svc.Update(context.Background(), ports.UpdateSettingsInput{SiteNameZH: "华兴"}); !errors.Is(err, dbErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestSettingsService_GetPublicLocalized(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{stored: seededSettings()}, zerolog.Nop())

	cases := []struct {
		lang     string
		wantLang string
		wantName string
		wantDesc string
	}{
		{"zh", "zh", "华兴科技", "工业自动化解决方案"},
		{"en", "en", "Huaxing Tech", "Industrial automation solutions"},
		{"fr", "zh", "华兴科技", "工业自动化解决方案"},
		{"", "zh", "华兴科技", "工业自动化解决方案"},
	}

	for _, tc := range cases {
		public, err := svc.GetPublic(context.Background(), tc.lang)
		if err != nil {
			t.Fatalf("get public %q: %v", tc.lang, err)
		}
		if public.Language != tc.wantLang {
			t.Errorf("lang %q: normalized to %q, want %q", tc.lang, public.Language, tc.wantLang)
		}
		if public.SiteName != tc.wantName {
			t.Errorf("lang %q: site name %q, want %q", tc.lang, public.SiteName, tc.wantName)
		}
		if public.SiteDescription != tc.wantDesc {
			t.Errorf("lang %q: description %q, want %q", tc.lang, public.SiteDescription, tc.wantDesc)
		}
	}
}

func TestSettingsService_GetPublicFallsBackToChinese(t *testing.T) {
	seeded := seededSettings()
	seeded.SiteNameEN = ""
	seeded.SiteDescriptionEN = ""
	svc := NewSettingsService(&stubSettingsRepo{stored: seeded}, zerolog.Nop())

	public, err := svc.GetPublic(context.Background(), "en")
	if err != nil {
		t.Fatalf("get public: %v", err)
	}
	if public.SiteName != "华兴科技" {
		t.Errorf("missing translation must fall back to Chinese, got %q", public.SiteName)
	}
	if public.ICPNumber != "京ICP备12345678号" {
		t.Errorf("icp number must pass through, got %q", public.ICPNumber)
	}
}
