package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracotta-tales/terracotta/internal/api"
	"github.com/terracotta-tales/terracotta/internal/model"
)

func newLoader(t *testing.T, handler http.HandlerFunc) *Loader {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewLoader(api.New(srv.URL, time.Second))
}

func TestLoader_LiveMenuWins(t *testing.T) {
	t.Parallel()

	l := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categories":[{"id":1,"name":"Live","items":[]}]}`))
	})

	m, err := l.Load(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, m.Categories, 1)
	assert.Equal(t, "Live", m.Categories[0].Name)
}

func TestLoader_ServerErrorFallsBackOnLandingPath(t *testing.T) {
	t.Parallel()

	l := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	m, err := l.Load(context.Background(), true)
	require.NoError(t, err)
	require.NotEmpty(t, m.Categories)

	// The snapshot carries the house dishes.
	_, category, ok := findByName(m, "Tandoori Prawn Skewers")
	require.True(t, ok)
	assert.Equal(t, "Charcoal Grill", category)
}

func TestLoader_ServerErrorSurfacesOnDetailPaths(t *testing.T) {
	t.Parallel()

	l := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := l.Load(context.Background(), false)
	assert.Error(t, err)
}

func TestLoader_ParseFailureFallsBack(t *testing.T) {
	t.Parallel()

	l := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	m, err := l.Load(context.Background(), true)
	require.NoError(t, err)
	assert.NotEmpty(t, m.Categories)
}

func TestFallback_SnapshotParses(t *testing.T) {
	t.Parallel()

	m, err := Fallback()
	require.NoError(t, err)
	require.NotEmpty(t, m.Categories)
	for _, c := range m.Categories {
		assert.NotEmpty(t, c.Name)
		for _, it := range c.Items {
			assert.NotEmpty(t, it.ID)
			assert.NotEmpty(t, it.Name)
			assert.Greater(t, it.PriceCents, int64(0))
		}
	}
}

func findByName(m model.Menu, name string) (id string, category string, ok bool) {
	for _, c := range m.Categories {
		for _, it := range c.Items {
			if it.Name == name {
				return it.ID.String(), c.Name, true
			}
		}
	}
	return "", "", false
}
