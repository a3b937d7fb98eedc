package domain

import "time"

// Settings is the single site-wide configuration document. ICPNumber holds
// the mainland-China filing number shown in the site footer.
type Settings struct {
	SiteNameZH        string    `json:"site_name_zh"`
	SiteNameEN        string    `json:"site_name_en"`
	SiteDescriptionZH string    `json:"site_description_zh"`
	SiteDescriptionEN string    `json:"site_description_en"`
	ContactEmail      string    `json:"contact_email"`
	ICPNumber         string    `json:"icp_number"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Localized returns the site name and description for the given language,
// falling back to Chinese when the English translation is empty.
func (s *Settings) Localized(lang string) (name, description string) {
	if NormalizeLang(lang) == LangEN && s.SiteNameEN != "" {
		return s.SiteNameEN, s.SiteDescriptionEN
	}
	return s.SiteNameZH, s.SiteDescriptionZH
}
