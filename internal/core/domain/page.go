package domain

import (
	"errors"
	"time"
)

var ErrPageNotFound = errors.New("page not found")

// Language codes served by the site. Chinese is the primary language and the
// fallback when a translation is missing.
const (
	LangZH = "zh"
	LangEN = "en"
)

// NormalizeLang maps an arbitrary lang parameter to a supported language.
func NormalizeLang(lang string) string {
	if lang == LangEN {
		return LangEN
	}
	return LangZH
}

// Page is a bilingual content block identified by a stable key
// (home, about, resources, culture, contact).
type Page struct {
	ID        string    `json:"id"`
	PageKey   string    `json:"page_key"`
	TitleZH   string    `json:"title_zh"`
	TitleEN   string    `json:"title_en"`
	ContentZH string    `json:"content_zh"`
	ContentEN string    `json:"content_en"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Localized returns the title and content for the given language, falling
// back to Chinese when the English translation is empty.
func (p *Page) Localized(lang string) (title, content string) {
	if NormalizeLang(lang) == LangEN && p.TitleEN != "" {
		return p.TitleEN, p.ContentEN
	}
	return p.TitleZH, p.ContentZH
}
