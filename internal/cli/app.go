package cli

import (
	"context"

	"github.com/terracotta-tales/terracotta/internal/api"
	"github.com/terracotta-tales/terracotta/internal/cart"
	"github.com/terracotta-tales/terracotta/internal/config"
	"github.com/terracotta-tales/terracotta/internal/content"
	"github.com/terracotta-tales/terracotta/internal/menu"
	"github.com/terracotta-tales/terracotta/internal/store/cartstore"
)

// App is the explicit application state handed to every command and view:
// configuration, the API client, the persisted cart, and the content
// decorator. Built once per invocation, torn down with the process.
type App struct {
	Cfg    *config.Config
	Client *api.Client
	Loader *menu.Loader
	Store  *cartstore.Store
	Cart   *cart.Cart
	Dec    content.Decorator
}

func newApp(opt Options) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opt.APIURL != "" {
		cfg.APIBaseURL = opt.APIURL
	}

	client := api.New(cfg.APIBaseURL, cfg.Timeout)
	store := cartstore.New(cfg.DataDir)

	return &App{
		Cfg:    cfg,
		Client: client,
		Loader: menu.NewLoader(client),
		Store:  store,
		Cart:   cart.FromItems(store.Load()),
		Dec:    content.KeywordDecorator{},
	}, nil
}

// saveCart persists the cart; called after every mutation.
func (a *App) saveCart() {
	a.Store.Save(a.Cart.Lines())
}

func (a *App) ctx() context.Context {
	return context.Background()
}
