package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry with bilingual copy.
type Product struct {
	ID            string    `json:"id"`
	NameZH        string    `json:"name_zh"`
	NameEN        string    `json:"name_en"`
	DescriptionZH string    `json:"description_zh"`
	DescriptionEN string    `json:"description_en"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Localized returns the name and description for the given language, falling
// back to Chinese when the English translation is empty.
func (p *Product) Localized(lang string) (name, description string) {
	if NormalizeLang(lang) == LangEN && p.NameEN != "" {
		return p.NameEN, p.DescriptionEN
	}
	return p.NameZH, p.DescriptionZH
}
