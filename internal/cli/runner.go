package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/terracotta-tales/terracotta/internal/cart"
	"github.com/terracotta-tales/terracotta/internal/checkout"
	"github.com/terracotta-tales/terracotta/internal/model"
	"github.com/terracotta-tales/terracotta/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	APIURL string // override the configured backend base URL
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "browse":
		return withApp(opt, doBrowse)

	case "menu":
		return withApp(opt, func(app *App) int {
			if len(a) == 0 {
				return doMenu(app)
			}
			return doCategory(app, model.ID(a[0]))
		})

	case "item":
		if len(a) != 1 {
			ui.Fail("usage: terracotta item <id>")
			return 2
		}
		return withApp(opt, func(app *App) int { return doItem(app, model.ID(a[0])) })

	case "cart":
		if len(a) == 0 {
			ui.Fail("usage: terracotta cart <ls|add|inc|dec|rm|clear>")
			return 2
		}
		return withApp(opt, func(app *App) int { return runCart(app, a[0], a[1:]) })

	case "checkout":
		return withApp(opt, func(app *App) int { return doCheckout(app, a) })

	case "fitness":
		if len(a) == 0 {
			ui.Fail("usage: terracotta fitness <profile|routine|advice|meal-prep|bmi>")
			return 2
		}
		return withApp(opt, func(app *App) int { return doFitness(app, a[0], a[1:]) })
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func withApp(opt Options, f func(*App) int) int {
	app, err := newApp(opt)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	return f(app)
}

func PrintHelp() {
	fmt.Printf(`terracotta - order from Terracotta Tales without leaving the terminal

Usage:
  terracotta <subcommand> [args]

Subcommands:
  browse                    Interactive menu browser with cart and checkout
  menu                      Print the full menu (bundled snapshot if offline)
  menu <category-id>        Print one category
  item <id>                 Show a single dish
  cart ls                   Show the cart
  cart add <id> [qty]       Add a dish by id (max %d per dish)
  cart inc <id>             One more of a dish
  cart dec <id>             One less; removes the line at zero
  cart rm <id>              Remove a line
  cart clear                Empty the cart
  checkout -name .. -phone .. -address .. [-notes ..]
                            Place the order
  fitness <sub> [flags]     Fitness advice endpoints

Examples:
  terracotta browse
  terracotta cart add 201 2
  terracotta checkout -name "Anika" -phone 01712345678 -address "Dhanmondi 27"
`, cart.MaxLineQty)
}

// ---------------------------------------------------
// Catalog subcommands
// ---------------------------------------------------

// doMenu prints the landing view: all categories. This is the one path that
// may serve the bundled snapshot when the backend is down.
func doMenu(app *App) int {
	m, err := app.Loader.Load(app.ctx(), true)
	if err != nil {
		ui.Panel(ui.MenuUnavailable())
		return 1
	}
	if len(m.Categories) == 0 {
		ui.Panel(ui.MenuUnavailable())
		return 0
	}
	for _, c := range m.Categories {
		lines := []string{ui.CategoryLine(c, app.Dec.CategoryImage(c.Name)), ""}
		for _, it := range c.Items {
			lines = append(lines, ui.ItemLine(it, app.Cart.Qty(it.ID)))
		}
		ui.Panel(lines)
	}
	fmt.Println(ui.Muted.Render(ui.CartBadge(app.Cart.Totals())))
	return 0
}

// doCategory prints one category. Detail paths never fall back; a fetch
// failure renders the inline error state.
func doCategory(app *App, id model.ID) int {
	m, err := app.Loader.Load(app.ctx(), false)
	if err != nil {
		ui.Panel(ui.LoadError(err))
		return 1
	}
	c, ok := m.FindCategory(id)
	if !ok {
		ui.Fail("no such category: " + id.String())
		return 2
	}
	lines := []string{ui.CategoryLine(c, app.Dec.CategoryImage(c.Name)), ""}
	for _, it := range c.Items {
		lines = append(lines, ui.ItemLine(it, app.Cart.Qty(it.ID)))
	}
	ui.Panel(lines)
	return 0
}

func doItem(app *App, id model.ID) int {
	m, err := app.Loader.Load(app.ctx(), false)
	if err != nil {
		ui.Panel(ui.LoadError(err))
		return 1
	}
	it, category, ok := m.FindItem(id)
	if !ok {
		ui.Panel([]string{ui.Title.Render("Dish not found"), "We could not find that dish."})
		return 2
	}
	ui.Panel(ui.ItemDetail(
		it,
		category,
		app.Dec.Description(it, category),
		app.Dec.ItemImage(it.Name),
		app.Dec.Ingredients(it.Name, category),
	))
	return 0
}

// ---------------------------------------------------
// Cart subcommands (mutate, persist, re-render)
// ---------------------------------------------------

func runCart(app *App, sub string, args []string) int {
	switch sub {
	case "ls":
		ui.Panel(ui.CartLines(app.Cart.Lines(), app.Cart.Totals()))
		return 0

	case "add":
		if len(args) < 1 || len(args) > 2 {
			ui.Fail("usage: terracotta cart add <id> [qty]")
			return 2
		}
		qty := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				ui.Fail("add: not a number: " + args[1])
				return 2
			}
			qty = n
		}
		return doCartAdd(app, model.ID(args[0]), qty)

	case "inc", "dec", "rm":
		if len(args) != 1 {
			ui.Fail(fmt.Sprintf("usage: terracotta cart %s <id>", sub))
			return 2
		}
		return doCartMutate(app, sub, model.ID(args[0]))

	case "clear":
		app.Cart.Clear()
		app.saveCart()
		ui.OK("cart cleared")
		return 0
	}

	ui.Fail("usage: terracotta cart <ls|add|inc|dec|rm|clear>")
	return 2
}

// doCartAdd resolves the dish through the catalog so the line carries its
// name and price. Uses the landing fetch policy so adding keeps working off
// the snapshot while the backend is down.
func doCartAdd(app *App, id model.ID, qty int) int {
	m, err := app.Loader.Load(app.ctx(), true)
	if err != nil {
		ui.Fail("load menu: " + err.Error())
		return 1
	}
	it, _, ok := m.FindItem(id)
	if !ok {
		ui.Fail("no such dish: " + id.String())
		return 2
	}
	app.Cart.Add(it, qty)
	app.saveCart()
	ui.OK(fmt.Sprintf("added %s (now %d)", it.Name, app.Cart.Qty(it.ID)))
	fmt.Println(ui.Muted.Render(ui.CartBadge(app.Cart.Totals())))
	return 0
}

func doCartMutate(app *App, sub string, id model.ID) int {
	var found bool
	switch sub {
	case "inc":
		found = app.Cart.Increase(id)
	case "dec":
		found = app.Cart.Decrease(id)
	case "rm":
		found = app.Cart.Remove(id)
	}
	if !found {
		ui.Fail("not in cart: " + id.String())
		return 2
	}
	app.saveCart()
	ui.OK(sub + " " + id.String())
	fmt.Println(ui.Muted.Render(ui.CartBadge(app.Cart.Totals())))
	return 0
}

// ---------------------------------------------------
// Checkout
// ---------------------------------------------------

func doCheckout(app *App, args []string) int {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "contact phone")
	address := fs.String("address", "", "delivery address")
	notes := fs.String("notes", "", "delivery notes")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" || *phone == "" || *address == "" {
		ui.Fail("usage: terracotta checkout -name <n> -phone <p> -address <a> [-notes <n>]")
		return 2
	}

	ui.Panel(ui.CheckoutSummary(app.Cart.Lines(), app.Cart.Totals()))

	flow := checkout.New(app.Client, app.Cart, app.Store)
	res := flow.Submit(app.ctx(), model.Customer{
		Name:    *name,
		Phone:   *phone,
		Address: *address,
		Notes:   *notes,
	})
	if res.Status != checkout.StatusSucceeded {
		ui.Fail(res.Message)
		return 1
	}
	ui.OK(res.Message)
	return 0
}
