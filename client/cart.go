package client

import (
	"context"

	"github.com/samir25141/SwiggyCloneBySamir/upstream"
)

// AddToCart bumps the quantity when the item is already in the cart.
func (s *State) AddToCart(item upstream.MenuItem, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range s.Cart {
		if s.Cart[i].ItemID == item.ID {
			s.Cart[i].Quantity += qty
			return
		}
	}
	s.Cart = append(s.Cart, CartItem{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
	})
}

func (s *State) RemoveFromCart(itemID string) {
	out := s.Cart[:0]
	for _, it := range s.Cart {
		if it.ItemID != itemID {
			out = append(out, it)
		}
	}
	s.Cart = out
}

// SetQuantity sets an item's quantity; zero or less removes it.
func (s *State) SetQuantity(itemID string, qty int) {
	if qty <= 0 {
		s.RemoveFromCart(itemID)
		return
	}
	for i := range s.Cart {
		if s.Cart[i].ItemID == itemID {
			s.Cart[i].Quantity = qty
			return
		}
	}
}

func (s *State) ClearCart() {
	s.Cart = []CartItem{}
}

func (s *State) CartTotal() float64 {
	total := 0.0
	for _, it := range s.Cart {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// SyncCart pushes the local cart to the server when a session exists.
// Failures are deliberately swallowed: the cart is recoverable locally and
// the next mutation will try again.
func (s *State) SyncCart(ctx context.Context, api *API) {
	if !s.LoggedIn() {
		return
	}
	_ = api.SaveCart(ctx, s.Cart)
}
