package models

import "time"

// Perfume categories are a fixed enumeration, there is no categories table.
var Categories = []string{"Árabe", "Diseñador", "Nicho"}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type PerfumeNotes struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

type Perfume struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Brand         string       `json:"brand"`
	Category      string       `json:"category"`
	Price         int          `json:"price"`
	ImageURL      string       `json:"image_url"`
	InStock       bool         `json:"in_stock"`
	Description   string       `json:"description,omitempty"`
	Notes         PerfumeNotes `json:"notes"`
	Volume        string       `json:"volume,omitempty"`
	Concentration string       `json:"concentration,omitempty"`
	CloudinaryID  string       `json:"-"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// PerfumeFilter mirrors the catalog sidebar: category tab, free-text
// search over name/brand, brand checkboxes, stock toggle and price range.
type PerfumeFilter struct {
	Category string
	Search   string
	Brands   []string
	Stock    string // "", "stock" or "pedido"
	MinPrice int
	MaxPrice int
	Page     int
	Limit    int
}
