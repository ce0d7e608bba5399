package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracotta-tales/terracotta/internal/api"
	"github.com/terracotta-tales/terracotta/internal/cart"
	"github.com/terracotta-tales/terracotta/internal/model"
	"github.com/terracotta-tales/terracotta/internal/store/cartstore"
)

var prawn = model.MenuItem{ID: "7", Name: "Tandoori Prawn Skewers", PriceCents: 45000}

var customer = model.Customer{Name: "Anika", Phone: "01712345678", Address: "Dhanmondi 27"}

func newFlow(t *testing.T, handler http.HandlerFunc) (*Flow, *cart.Cart, *cartstore.Store, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := cart.New()
	store := cartstore.New(t.TempDir())
	return New(api.New(srv.URL, time.Second), c, store), c, store, &hits
}

func TestFlow_EmptyCartFailsWithoutNetworkCall(t *testing.T) {
	t.Parallel()

	f, _, _, hits := newFlow(t, func(w http.ResponseWriter, r *http.Request) {})

	res := f.Submit(context.Background(), customer)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "Your cart is empty.", res.Message)
	assert.Equal(t, int64(0), hits.Load())
	assert.Equal(t, StatusFailed, f.Status())
}

func TestFlow_SuccessClearsCartAndPersists(t *testing.T) {
	t.Parallel()

	f, c, store, hits := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		var req model.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, 2, req.Items[0].Qty)
		assert.Equal(t, "Anika", req.Customer.Name)

		_ = json.NewEncoder(w).Encode(model.CheckoutResponse{
			Status: "paid", TransactionID: "TX1",
		})
	})

	c.Add(prawn, 2)
	store.Save(c.Lines())

	res := f.Submit(context.Background(), customer)
	require.Equal(t, StatusSucceeded, res.Status)
	assert.Equal(t, "Payment paid. Transaction: TX1", res.Message)
	require.NotNil(t, res.Response)
	assert.Equal(t, "TX1", res.Response.TransactionID)

	assert.Equal(t, int64(1), hits.Load())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, store.Load())
}

func TestFlow_ServerErrorPreservesCart(t *testing.T) {
	t.Parallel()

	f, c, store, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid cart data"}`))
	})

	c.Add(prawn, 1)
	store.Save(c.Lines())

	res := f.Submit(context.Background(), customer)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "Payment failed: Invalid cart data", res.Message)

	// Cart and persisted state survive for a retry.
	assert.Equal(t, 1, c.Len())
	assert.Len(t, store.Load(), 1)
}

func TestFlow_TransportErrorPreservesCart(t *testing.T) {
	t.Parallel()

	c := cart.New()
	c.Add(prawn, 1)
	store := cartstore.New(t.TempDir())
	// Nothing listens on this address.
	f := New(api.New("http://127.0.0.1:1", 200*time.Millisecond), c, store)

	res := f.Submit(context.Background(), customer)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Message, "Payment failed: ")
	assert.Equal(t, 1, c.Len())
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
