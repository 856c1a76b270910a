// Package client implements the terminal client: it keeps session, cart and
// delivery-location state in a local file and talks to the backend API.
// Cart changes are pushed to the server opportunistically; a failed push is
// ignored and the local copy stays authoritative for display.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CartItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// State is everything the client persists between runs.
type State struct {
	Token    string       `json:"token,omitempty"`
	User     *SessionUser `json:"user,omitempty"`
	Cart     []CartItem   `json:"cart"`
	Location Location     `json:"location"`
}

// LoadState reads the state file; a missing or corrupt file yields defaults.
func LoadState(path string) *State {
	st := &State{Cart: []CartItem{}, Location: DefaultLocation}

	raw, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(raw, st); err != nil {
		return &State{Cart: []CartItem{}, Location: DefaultLocation}
	}
	if st.Cart == nil {
		st.Cart = []CartItem{}
	}
	if st.Location.Name == "" {
		st.Location = DefaultLocation
	}
	return st
}

func (s *State) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func (s *State) LoggedIn() bool {
	return s.Token != ""
}

// DefaultStatePath คือ ~/.swiggy-cli/state.json
func DefaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.json"
	}
	return filepath.Join(home, ".swiggy-cli", "state.json")
}
