package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/terracotta-tales/terracotta/internal/cart"
	"github.com/terracotta-tales/terracotta/internal/checkout"
	"github.com/terracotta-tales/terracotta/internal/model"
	"github.com/terracotta-tales/terracotta/internal/ui"
)

type page int

const (
	pageHome page = iota
	pageCategory
	pageItem
)

// ---------------------------------------------------
// Messages
// ---------------------------------------------------

type menuLoadedMsg struct {
	menu model.Menu
	err  error
}

type checkoutDoneMsg struct {
	res checkout.Result
}

// ---------------------------------------------------
// List adapters
// ---------------------------------------------------

// categoryEntry adapts a Category to bubbles/list.Item.
type categoryEntry struct {
	c model.Category
}

func (e categoryEntry) Title() string       { return e.c.Name }
func (e categoryEntry) Description() string { return fmt.Sprintf("%d dishes", len(e.c.Items)) }
func (e categoryEntry) FilterValue() string { return e.c.Name }

// dishEntry adapts a MenuItem plus its in-cart badge.
type dishEntry struct {
	it     model.MenuItem
	inCart int
}

func (e dishEntry) Title() string       { return ui.ItemLine(e.it, e.inCart) }
func (e dishEntry) Description() string { return "" }
func (e dishEntry) FilterValue() string { return e.it.Name }

// Single-line delegates, one per list flavor.
type categoryDelegate struct{}

func (d categoryDelegate) Height() int                               { return 1 }
func (d categoryDelegate) Spacing() int                              { return 0 }
func (d categoryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d categoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, _ := item.(categoryEntry)
	line := fmt.Sprintf("%s  %s", e.c.Name, ui.Muted.Render(fmt.Sprintf("%d dishes", len(e.c.Items))))
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type dishDelegate struct{}

func (d dishDelegate) Height() int                               { return 1 }
func (d dishDelegate) Spacing() int                              { return 0 }
func (d dishDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d dishDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, _ := item.(dishEntry)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+e.Title())
}

// ---------------------------------------------------
// Model
// ---------------------------------------------------

const (
	fieldName = iota
	fieldPhone
	fieldAddress
	fieldNotes
	fieldCount
)

type browseModel struct {
	app *App

	page    page
	menu    model.Menu
	loading bool
	loadErr error

	categories list.Model
	dishes     list.Model
	curCat     model.Category

	curItem    model.MenuItem
	curItemCat string
	pickQty    int
	itemMsg    string

	cartOpen bool
	cartIdx  int

	checkoutOpen bool
	inputs       []textinput.Model
	focus        int
	submitting   bool
	checkoutMsg  string

	status string

	width, height int
}

// doBrowse starts the interactive menu browser.
func doBrowse(app *App) int {
	m := newBrowseModel(app)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		ui.Fail("browse: " + err.Error())
		return 1
	}
	return 0
}

func newBrowseModel(app *App) browseModel {
	cl := list.New(nil, categoryDelegate{}, 0, 0)
	cl.Title = "Terracotta Tales"
	cl.SetShowStatusBar(false)
	cl.SetFilteringEnabled(true)
	cl.Styles.Title = ui.Title
	cl.Styles.HelpStyle = ui.Help
	cl.FilterInput.Prompt = "/ "

	dl := list.New(nil, dishDelegate{}, 0, 0)
	dl.SetShowStatusBar(false)
	dl.SetFilteringEnabled(true)
	dl.Styles.Title = ui.Title
	dl.Styles.HelpStyle = ui.Help
	dl.FilterInput.Prompt = "/ "

	cartBind := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart"))
	addBind := key.NewBinding(key.WithKeys("+"), key.WithHelp("+/-", "adjust cart"))
	cl.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{cartBind} }
	dl.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{cartBind, addBind} }

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = "> "
		inputs[i].CharLimit = 200
	}
	inputs[fieldName].Placeholder = "Name"
	inputs[fieldPhone].Placeholder = "Phone"
	inputs[fieldAddress].Placeholder = "Address"
	inputs[fieldNotes].Placeholder = "Notes (optional)"

	return browseModel{
		app:     app,
		page:    pageHome,
		loading: true,
		pickQty: 1,

		categories: cl,
		dishes:     dl,
		inputs:     inputs,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadMenu()
}

// loadMenu fetches the catalog with the landing-page policy: a dead
// backend serves the bundled snapshot.
func (m browseModel) loadMenu() tea.Cmd {
	loader := m.app.Loader
	return func() tea.Msg {
		menu, err := loader.Load(context.Background(), true)
		return menuLoadedMsg{menu: menu, err: err}
	}
}

// submitCheckout posts the order. Network only; the cart transition runs on
// the update loop when the result lands.
func (m browseModel) submitCheckout(customer model.Customer) tea.Cmd {
	client := m.app.Client
	req := model.CheckoutRequest{Customer: customer, Items: m.app.Cart.Lines()}
	return func() tea.Msg {
		res, err := client.Checkout(context.Background(), req)
		if err != nil {
			return checkoutDoneMsg{res: checkout.ResultFromError(err)}
		}
		return checkoutDoneMsg{res: checkout.ResultFromResponse(res)}
	}
}

// ---------------------------------------------------
// Update
// ---------------------------------------------------

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case menuLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.menu = msg.menu
			items := make([]list.Item, 0, len(m.menu.Categories))
			for _, c := range m.menu.Categories {
				items = append(items, categoryEntry{c: c})
			}
			m.categories.SetItems(items)
		}
		return m, nil

	case checkoutDoneMsg:
		m.submitting = false
		m.checkoutMsg = msg.res.Message
		if msg.res.Status == checkout.StatusSucceeded {
			m.app.Cart.Clear()
			m.app.saveCart()
			m.resetCheckoutForm()
			m.checkoutOpen = false
			m.cartOpen = false
			m.status = msg.res.Message
			m.refreshDishes()
		}
		return m, nil
	}

	if m.checkoutOpen {
		return m.updateCheckout(msg)
	}
	if m.cartOpen {
		return m.updateCart(msg)
	}

	switch m.page {
	case pageHome:
		return m.updateHome(msg)
	case pageCategory:
		return m.updateCategory(msg)
	default:
		return m.updateItem(msg)
	}
}

func (m browseModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && !m.categories.SettingFilter() {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c":
			m.cartOpen = true
			m.cartIdx = 0
			return m, nil
		case "enter":
			if e, ok := m.categories.SelectedItem().(categoryEntry); ok {
				m.curCat = e.c
				m.page = pageCategory
				m.dishes.Title = e.c.Name
				m.refreshDishes()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.categories, cmd = m.categories.Update(msg)
	return m, cmd
}

func (m browseModel) updateCategory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && !m.dishes.SettingFilter() {
		switch k.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			m.page = pageHome
			return m, nil
		case "c":
			m.cartOpen = true
			m.cartIdx = 0
			return m, nil
		case "+":
			if e, ok := m.dishes.SelectedItem().(dishEntry); ok {
				m.app.Cart.Add(e.it, 1)
				m.syncCart()
			}
			return m, nil
		case "-":
			if e, ok := m.dishes.SelectedItem().(dishEntry); ok {
				m.app.Cart.Decrease(e.it.ID)
				m.syncCart()
			}
			return m, nil
		case "enter":
			if e, ok := m.dishes.SelectedItem().(dishEntry); ok {
				m.curItem = e.it
				m.curItemCat = m.curCat.Name
				m.pickQty = 1
				m.itemMsg = ""
				m.page = pageItem
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.dishes, cmd = m.dishes.Update(msg)
	return m, cmd
}

func (m browseModel) updateItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.page = pageCategory
		return m, nil
	case "c":
		m.cartOpen = true
		m.cartIdx = 0
		return m, nil
	case "+", "right":
		// The picker is freestanding: it only touches the cart on add.
		if m.pickQty < cart.MaxLineQty {
			m.pickQty++
		}
		return m, nil
	case "-", "left":
		if m.pickQty > 1 {
			m.pickQty--
		}
		return m, nil
	case "a", "enter":
		m.app.Cart.Add(m.curItem, m.pickQty)
		m.syncCart()
		m.itemMsg = fmt.Sprintf("Added %d to cart.", m.pickQty)
		m.pickQty = 1
		return m, nil
	}
	return m, nil
}

func (m browseModel) updateCart(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	lines := m.app.Cart.Lines()
	switch k.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "c":
		m.cartOpen = false
		return m, nil
	case "up", "k":
		if m.cartIdx > 0 {
			m.cartIdx--
		}
		return m, nil
	case "down", "j":
		if m.cartIdx < len(lines)-1 {
			m.cartIdx++
		}
		return m, nil
	case "+":
		if m.cartIdx < len(lines) {
			m.app.Cart.Increase(lines[m.cartIdx].ID)
			m.syncCart()
		}
		return m, nil
	case "-":
		if m.cartIdx < len(lines) {
			m.app.Cart.Decrease(lines[m.cartIdx].ID)
			m.syncCart()
			m.clampCartIdx()
		}
		return m, nil
	case "x", "r":
		if m.cartIdx < len(lines) {
			m.app.Cart.Remove(lines[m.cartIdx].ID)
			m.syncCart()
			m.clampCartIdx()
		}
		return m, nil
	case "C":
		m.app.Cart.Clear()
		m.syncCart()
		m.cartIdx = 0
		return m, nil
	case "enter":
		// Checkout control is disabled while the cart is empty.
		if ui.CheckoutEnabled(m.app.Cart.Totals()) {
			m.checkoutOpen = true
			m.checkoutMsg = ""
			m.focus = fieldName
			m.focusField(fieldName)
		}
		return m, nil
	}
	return m, nil
}

func (m browseModel) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.submitting {
		// One in-flight request per submission; ignore keys until it lands.
		if k.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}
	switch k.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.checkoutOpen = false
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		m.focusField(m.focus)
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.focusField(m.focus)
		return m, nil
	case "enter":
		if m.focus < fieldNotes {
			m.focus++
			m.focusField(m.focus)
			return m, nil
		}
		return m.startSubmit()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m browseModel) startSubmit() (tea.Model, tea.Cmd) {
	if !ui.CheckoutEnabled(m.app.Cart.Totals()) {
		m.checkoutMsg = ui.EmptyCartMessage
		return m, nil
	}
	customer := model.Customer{
		Name:    strings.TrimSpace(m.inputs[fieldName].Value()),
		Phone:   strings.TrimSpace(m.inputs[fieldPhone].Value()),
		Address: strings.TrimSpace(m.inputs[fieldAddress].Value()),
		Notes:   strings.TrimSpace(m.inputs[fieldNotes].Value()),
	}
	// Same fields the form marks required.
	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		m.checkoutMsg = "Name, phone and address are required."
		return m, nil
	}
	m.submitting = true
	m.checkoutMsg = "Processing payment..."
	return m, m.submitCheckout(customer)
}

// ---------------------------------------------------
// Shared state helpers
// ---------------------------------------------------

// syncCart persists the cart and refreshes every badge, the fixed
// mutate → save → re-render cycle.
func (m *browseModel) syncCart() {
	m.app.saveCart()
	m.refreshDishes()
}

func (m *browseModel) refreshDishes() {
	if m.page < pageCategory {
		return
	}
	items := make([]list.Item, 0, len(m.curCat.Items))
	for _, it := range m.curCat.Items {
		items = append(items, dishEntry{it: it, inCart: m.app.Cart.Qty(it.ID)})
	}
	m.dishes.SetItems(items)
}

func (m *browseModel) clampCartIdx() {
	if n := m.app.Cart.Len(); m.cartIdx >= n && n > 0 {
		m.cartIdx = n - 1
	} else if n == 0 {
		m.cartIdx = 0
	}
}

func (m *browseModel) focusField(i int) {
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *browseModel) resetCheckoutForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldName
}

// ---------------------------------------------------
// View
// ---------------------------------------------------

func (m browseModel) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	var content string
	switch {
	case m.loading:
		content = ui.Muted.Render("Loading menu...")
	case m.loadErr != nil:
		content = strings.Join(ui.MenuUnavailable(), "\n")
	case m.checkoutOpen:
		content = m.viewCheckout()
	case m.cartOpen:
		content = m.viewCart()
	case m.page == pageHome:
		m.categories.SetSize(w-4, h-6)
		content = m.categories.View()
	case m.page == pageCategory:
		m.dishes.SetSize(w-4, h-6)
		content = m.dishes.View()
	default:
		content = m.viewItem()
	}

	footer := ui.Help.Render(ui.CartBadge(m.app.Cart.Totals()))
	if m.status != "" {
		footer = ui.Success.Render(m.status) + "\n" + footer
	}
	return ui.PanelString(content + "\n\n" + footer)
}

func (m browseModel) viewItem() string {
	lines := ui.ItemDetail(
		m.curItem,
		m.curItemCat,
		m.app.Dec.Description(m.curItem, m.curItemCat),
		m.app.Dec.ItemImage(m.curItem.Name),
		m.app.Dec.Ingredients(m.curItem.Name, m.curItemCat),
	)
	lines = append(lines, "",
		fmt.Sprintf("Quantity: %s  %s",
			ui.Accent.Render(fmt.Sprintf("%d", m.pickQty)),
			ui.Help.Render("(+/- to adjust, a to add, esc to go back)")))
	if m.itemMsg != "" {
		lines = append(lines, ui.Success.Render(m.itemMsg))
	}
	return strings.Join(lines, "\n")
}

func (m browseModel) viewCart() string {
	lines := m.app.Cart.Lines()
	totals := m.app.Cart.Totals()

	rows := []string{ui.Title.Render("Your cart"), ""}
	if len(lines) == 0 {
		rows = append(rows, ui.EmptyCartMessage)
	}
	for i, l := range lines {
		prefix := "  "
		if i == m.cartIdx {
			prefix = ui.Selected.Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%d × %s  %s",
			prefix, l.Qty, l.Name, model.FormatPrice(l.LineTotal())))
	}
	rows = append(rows, "",
		fmt.Sprintf("Items: %d   Subtotal: %s   Total: %s",
			totals.Count, model.FormatPrice(totals.Subtotal), model.FormatPrice(totals.Subtotal)))

	checkoutHint := "enter checkout"
	if !ui.CheckoutEnabled(totals) {
		checkoutHint = ui.Disabled.Render("enter checkout")
	}
	rows = append(rows, ui.Help.Render("+/- adjust · x remove · C clear · "+checkoutHint+" · esc close"))
	return strings.Join(rows, "\n")
}

func (m browseModel) viewCheckout() string {
	rows := append([]string{}, ui.CheckoutSummary(m.app.Cart.Lines(), m.app.Cart.Totals())...)
	rows = append(rows, "")
	labels := []string{"Name", "Phone", "Address", "Notes"}
	for i, in := range m.inputs {
		rows = append(rows, labels[i], in.View())
	}
	if m.checkoutMsg != "" {
		style := ui.Error
		if m.submitting {
			style = ui.Pending
		}
		rows = append(rows, "", style.Render(m.checkoutMsg))
	}
	rows = append(rows, "", ui.Help.Render("tab next field · enter submit · esc cancel"))

	inner := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(inner)
}
