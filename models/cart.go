package models

import (
	"encoding/json"
	"fmt"
)

// CartSchemaVersion is embedded in every persisted cart document so a
// future field rename cannot silently corrupt old carts.
const CartSchemaVersion = 1

// CartLine is one catalog item plus the requested quantity. Lines are
// merged by perfume ID: a cart never holds two lines for the same perfume.
type CartLine struct {
	PerfumeID string `json:"perfume_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Category  string `json:"category"`
	Price     int    `json:"price"`
	ImageURL  string `json:"image_url"`
	InStock   bool   `json:"in_stock"`
	Quantity  int    `json:"quantity"`
}

// CartDocument is the serialized form written to the cart slot.
type CartDocument struct {
	Version int        `json:"version"`
	Items   []CartLine `json:"items"`
}

func EncodeCartDocument(items []CartLine) ([]byte, error) {
	if items == nil {
		items = []CartLine{}
	}
	return json.Marshal(CartDocument{Version: CartSchemaVersion, Items: items})
}

func DecodeCartDocument(data []byte) ([]CartLine, error) {
	var doc CartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("undecodable cart document: %w", err)
	}
	if doc.Version != CartSchemaVersion {
		return nil, fmt.Errorf("unsupported cart schema version %d", doc.Version)
	}
	return doc.Items, nil
}

// Notice is the short-lived acknowledgement a cart mutation emits, rendered
// as a toast by the storefront. Zero value means "nothing to announce".
type Notice struct {
	Level       string `json:"level,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

const (
	NoticeSuccess = "success"
	NoticeInfo    = "info"
)
