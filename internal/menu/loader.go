// Package menu loads the catalog from the backend. The landing view may
// fall back to a bundled snapshot when the backend is unreachable; detail
// views surface the error instead, so stale data never masquerades as a
// live catalog there.
package menu

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/terracotta-tales/terracotta/internal/api"
	"github.com/terracotta-tales/terracotta/internal/model"
)

// Snapshot of the menu shipped with the binary, same shape as GET /api/menu.
//
//go:embed fallback.json
var fallbackJSON []byte

type Loader struct {
	client *api.Client
}

func NewLoader(c *api.Client) *Loader {
	return &Loader{client: c}
}

// Load fetches the catalog in one attempt, no retries. With fallback
// enabled a failed fetch serves the embedded snapshot instead; otherwise
// the error is returned for an inline error state.
func (l *Loader) Load(ctx context.Context, fallback bool) (model.Menu, error) {
	m, err := l.client.Menu(ctx)
	if err == nil {
		return m, nil
	}
	if !fallback {
		return model.Menu{}, err
	}
	log.Printf("menu: %v, serving bundled snapshot", err)
	return Fallback()
}

// Fallback decodes the embedded snapshot.
func Fallback() (model.Menu, error) {
	var m model.Menu
	if err := json.Unmarshal(fallbackJSON, &m); err != nil {
		return model.Menu{}, fmt.Errorf("parse bundled menu: %w", err)
	}
	return m, nil
}
