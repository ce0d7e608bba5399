// Package checkout drives order submission: a linear idle → submitting →
// succeeded/failed progression with no retries. Failure leaves the cart and
// form untouched so the user can try again; success clears both.
package checkout

import (
	"context"
	"fmt"

	"github.com/terracotta-tales/terracotta/internal/api"
	"github.com/terracotta-tales/terracotta/internal/cart"
	"github.com/terracotta-tales/terracotta/internal/model"
	"github.com/terracotta-tales/terracotta/internal/store/cartstore"
)

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one submission attempt. Message is ready to show
// to the user; Response is set only on success.
type Result struct {
	Status   Status
	Message  string
	Response *model.CheckoutResponse
}

// EmptyCartResult is the local refusal to submit an empty cart.
func EmptyCartResult() Result {
	return Result{Status: StatusFailed, Message: "Your cart is empty."}
}

// ResultFromResponse wraps a successful server response.
func ResultFromResponse(res model.CheckoutResponse) Result {
	return Result{
		Status:   StatusSucceeded,
		Message:  fmt.Sprintf("Payment %s. Transaction: %s", res.Status, res.TransactionID),
		Response: &res,
	}
}

// ResultFromError wraps a failed submission; err.Error() is the server's
// message for API errors, so it surfaces verbatim.
func ResultFromError(err error) Result {
	return Result{
		Status:  StatusFailed,
		Message: fmt.Sprintf("Payment failed: %s", err.Error()),
	}
}

type Flow struct {
	client *api.Client
	cart   *cart.Cart
	store  *cartstore.Store
	status Status
}

func New(client *api.Client, c *cart.Cart, store *cartstore.Store) *Flow {
	return &Flow{client: client, cart: c, store: store, status: StatusIdle}
}

func (f *Flow) Status() Status { return f.status }

// Submit snapshots the cart and posts the order. An empty cart fails
// locally without touching the network. On success the cart is cleared and
// persisted; on failure it is left as-is for a retry.
func (f *Flow) Submit(ctx context.Context, customer model.Customer) Result {
	if f.cart.Totals().Count == 0 {
		f.status = StatusFailed
		return EmptyCartResult()
	}

	f.status = StatusSubmitting
	req := model.CheckoutRequest{
		Customer: customer,
		Items:    f.cart.Lines(),
	}

	res, err := f.client.Checkout(ctx, req)
	if err != nil {
		f.status = StatusFailed
		return ResultFromError(err)
	}

	f.cart.Clear()
	f.store.Save(f.cart.Lines())

	f.status = StatusSucceeded
	return ResultFromResponse(res)
}
