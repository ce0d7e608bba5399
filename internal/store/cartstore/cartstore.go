// Package cartstore persists the shopping cart as a single JSON file, the
// desktop analog of the site's one localStorage key. Reads never fail the
// caller: anything missing or malformed degrades to an empty cart, and
// individual bad records are dropped without losing the rest.
package cartstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/terracotta-tales/terracotta/internal/model"
)

const fileName = "cart.json"

type Store struct {
	path string
}

// New returns a store writing under dir (typically ~/.terracotta).
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Path reports the backing file location.
func (s *Store) Path() string { return s.path }

// rawLine mirrors LineItem with every field optional so one bad record can
// be rejected on its own instead of failing the whole unmarshal.
type rawLine struct {
	ID    *model.ID `json:"id"`
	Name  *string   `json:"name"`
	Price *float64  `json:"price_cents"`
	Qty   *float64  `json:"qty"`
}

func (r rawLine) valid() bool {
	return r.ID != nil && *r.ID != "" &&
		r.Name != nil &&
		r.Price != nil &&
		r.Qty != nil && *r.Qty >= 1
}

// Load reads the persisted cart. A missing file, unreadable file, malformed
// JSON or a non-array payload all yield an empty slice; failures are logged
// and never surfaced.
func (s *Store) Load() []model.LineItem {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("cartstore: read %s: %v", s.path, err)
		}
		return []model.LineItem{}
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		log.Printf("cartstore: parse %s: %v", s.path, err)
		return []model.LineItem{}
	}

	items := make([]model.LineItem, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		var r rawLine
		if err := json.Unmarshal(raw, &r); err != nil || !r.valid() {
			dropped++
			continue
		}
		items = append(items, model.LineItem{
			ID:         *r.ID,
			Name:       *r.Name,
			PriceCents: int64(*r.Price),
			Qty:        int(*r.Qty),
		})
	}
	if dropped > 0 {
		log.Printf("cartstore: dropped %d invalid record(s) from %s", dropped, s.path)
	}
	return items
}

// Save writes the cart wholesale. Best-effort: errors are logged, the
// caller carries on with its in-memory state.
func (s *Store) Save(items []model.LineItem) {
	if items == nil {
		items = []model.LineItem{}
	}
	if err := s.save(items); err != nil {
		log.Printf("cartstore: %v", err)
	}
}

func (s *Store) save(items []model.LineItem) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
