package services

import (
	"context"
	"fmt"
	"log"

	"esencia-shop/models"
	"esencia-shop/repositories"
)

// CartStore holds the ordered cart for one cart token and mirrors every
// mutation to its durable slot. No operation surfaces an error to the
// caller: malformed persisted data degrades to an empty cart, invalid
// mutation inputs are no-ops, and failed slot writes are logged and
// swallowed. The cart is convenience state, never the record of a sale.
type CartStore struct {
	repo     repositories.CartRepository
	token    string
	lines    []models.CartLine
	hydrated bool
}

func NewCartStore(repo repositories.CartRepository, token string) *CartStore {
	return &CartStore{repo: repo, token: token}
}

// Load rehydrates the cart from its slot. A missing slot yields an empty
// cart; an unreadable one is logged and also yields an empty cart.
func (s *CartStore) Load(ctx context.Context) {
	lines, err := s.repo.Load(ctx, s.token)
	if err != nil {
		log.Printf("cart %s: discarding persisted cart: %v", s.token, err)
		lines = nil
	}
	s.lines = lines
	s.hydrated = true
}

// Lines returns the cart in insertion order.
func (s *CartStore) Lines() []models.CartLine {
	if s.lines == nil {
		return []models.CartLine{}
	}
	return s.lines
}

// AddItem merges by perfume ID: an existing line grows by quantity, a new
// one is appended at the end. Items without an ID, with a negative price,
// or with a non-positive quantity are ignored.
func (s *CartStore) AddItem(ctx context.Context, item models.Perfume, quantity int) models.Notice {
	if item.ID == "" || item.Price < 0 || quantity < 1 {
		return models.Notice{}
	}

	for i := range s.lines {
		if s.lines[i].PerfumeID == item.ID {
			s.lines[i].Quantity += quantity
			s.persist(ctx)
			return models.Notice{
				Level:       models.NoticeSuccess,
				Title:       "Cantidad actualizada",
				Description: fmt.Sprintf("%s (%d)", item.Name, s.lines[i].Quantity),
			}
		}
	}

	s.lines = append(s.lines, models.CartLine{
		PerfumeID: item.ID,
		Name:      item.Name,
		Brand:     item.Brand,
		Category:  item.Category,
		Price:     item.Price,
		ImageURL:  item.ImageURL,
		InStock:   item.InStock,
		Quantity:  quantity,
	})
	s.persist(ctx)
	return models.Notice{
		Level:       models.NoticeSuccess,
		Title:       "Agregado al carrito",
		Description: item.Name,
	}
}

// RemoveItem deletes the line for id. Removing an absent id is a no-op
// and emits nothing.
func (s *CartStore) RemoveItem(ctx context.Context, id string) models.Notice {
	for i := range s.lines {
		if s.lines[i].PerfumeID == id {
			name := s.lines[i].Name
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx)
			return models.Notice{
				Level:       models.NoticeInfo,
				Title:       "Eliminado del carrito",
				Description: name,
			}
		}
	}
	return models.Notice{}
}

// SetQuantity overwrites a line's quantity in place. A quantity of zero or
// below behaves exactly like RemoveItem, acknowledgement included.
func (s *CartStore) SetQuantity(ctx context.Context, id string, quantity int) models.Notice {
	if quantity <= 0 {
		return s.RemoveItem(ctx, id)
	}

	for i := range s.lines {
		if s.lines[i].PerfumeID == id {
			s.lines[i].Quantity = quantity
			s.persist(ctx)
			break
		}
	}
	return models.Notice{}
}

// Clear empties the cart unconditionally.
func (s *CartStore) Clear(ctx context.Context) models.Notice {
	s.lines = nil
	s.persist(ctx)
	return models.Notice{
		Level: models.NoticeInfo,
		Title: "Carrito vaciado",
	}
}

// TotalItems is the sum of all line quantities.
func (s *CartStore) TotalItems() int {
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity over all lines.
func (s *CartStore) Subtotal() int {
	total := 0
	for _, line := range s.lines {
		total += line.Price * line.Quantity
	}
	return total
}

// Total is today identical to Subtotal. It stays a separate operation
// because callers bind to the name; shipping and discounts would land here.
func (s *CartStore) Total() int {
	return s.Subtotal()
}

// persist writes the whole cart to its slot. It refuses to write before
// Load has run, so an empty in-memory cart can never clobber a previously
// persisted one during the same request.
func (s *CartStore) persist(ctx context.Context) {
	if !s.hydrated {
		log.Printf("cart %s: skipping persist before initial load", s.token)
		return
	}
	if err := s.repo.Save(ctx, s.token, s.Lines()); err != nil {
		log.Printf("cart %s: persist failed: %v", s.token, err)
	}
}
