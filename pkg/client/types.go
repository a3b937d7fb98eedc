package client

import "time"

// Wire types mirroring the backend's JSON contract. They are duplicated here
// deliberately so the client package stands alone for external consumers.

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Page struct {
	ID        string    `json:"id"`
	PageKey   string    `json:"page_key"`
	TitleZH   string    `json:"title_zh"`
	TitleEN   string    `json:"title_en"`
	ContentZH string    `json:"content_zh"`
	ContentEN string    `json:"content_en"`
	UpdatedAt time.Time `json:"updated_at"`
}

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

type Message struct {
	ID        string     `json:"id"`
	Reference string     `json:"reference"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	Reply     string     `json:"reply,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
}

type Settings struct {
	SiteNameZH        string    `json:"site_name_zh"`
	SiteNameEN        string    `json:"site_name_en"`
	SiteDescriptionZH string    `json:"site_description_zh"`
	SiteDescriptionEN string    `json:"site_description_en"`
	ContactEmail      string    `json:"contact_email"`
	ICPNumber         string    `json:"icp_number"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type ProductList struct {
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type MessageList struct {
	Data       []Message  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PageInput carries the editable fields of a page.
type PageInput struct {
	TitleZH   string `json:"title_zh"`
	TitleEN   string `json:"title_en"`
	ContentZH string `json:"content_zh"`
	ContentEN string `json:"content_en"`
}

// ProductInput carries the editable fields of a catalog entry.
type ProductInput struct {
	NameZH        string  `json:"name_zh"`
	NameEN        string  `json:"name_en"`
	DescriptionZH string  `json:"description_zh"`
	DescriptionEN string  `json:"description_en"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
}

// UserInput carries the fields for a new admin-area account.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SettingsInput carries the editable site-settings fields.
type SettingsInput struct {
	SiteNameZH        string `json:"site_name_zh"`
	SiteNameEN        string `json:"site_name_en"`
	SiteDescriptionZH string `json:"site_description_zh"`
	SiteDescriptionEN string `json:"site_description_en"`
	ContactEmail      string `json:"contact_email"`
	ICPNumber         string `json:"icp_number"`
}
