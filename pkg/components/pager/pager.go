package pager

import (
	"maps"
	"net/url"
	"strconv"

	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/store"
)

// Kind is the schema type of the pager control.
const Kind = "pagination"

const (
	ModeNormal = "normal"
	ModeSimple = "simple"

	DefaultMaxButtons = 5

	ClassRoot     = "Pagination"
	ClassList     = "Pagination-list"
	ClassItem     = "Pagination-item"
	ClassPrev     = "Pagination-prev"
	ClassNext     = "Pagination-next"
	ClassEllipsis = "Pagination-ellipsis"
	ClassJump     = "Pagination-jump"
	ClassActive   = "is-active"
	ClassDisabled = "is-disabled"

	// ActionParam and PageParam are the query parameters page links carry.
	ActionParam = "action"
	PageParam   = "page"

	// ActionAttr carries the bound action id on the pager root.
	ActionAttr = "data-action"
)

// Register binds the pager to reg.
func Register(reg *render.Registry) error {
	return reg.Register(render.Definition{
		Kind:    Kind,
		Factory: render.Stateless(Render),
	})
}

// Render implements render.ComponentFunc for the pager control. Page props
// the node omits are read from the ambient pagination locals, so a pager
// placed in a wrapper body follows the wrapper's store.
func Render(host render.Host, node schema.Node) (*render.Node, error) {
	data := host.Data()
	last := max(node.Int("lastPage", dataInt(data, store.LocalLastPage, 1)), 1)
	active := min(max(node.Int("activePage", dataInt(data, store.LocalCurrentPage, 1)), 1), last)
	mode := node.String("mode", ModeNormal)
	maxButtons := node.Int("maxButton", DefaultMaxButtons)

	onChange, ok := node.Props["onPageChange"].(func(int))
	if !ok {
		onChange, _ = data[store.LocalPageChange].(func(int))
	}
	actionID := ""
	if onChange != nil {
		actionID = host.Bind(onChange)
	}
	link := linker{actionID: actionID}

	list := render.El("ul", []string{ClassList})
	list.Append(link.item(host.Translate("Pagination.prev"), active-1, active <= 1, ClassPrev))
	if mode == ModeSimple {
		list.Append(link.page(active, active))
	} else {
		for _, page := range Window(active, last, maxButtons) {
			if page == Ellipsis {
				list.Append(render.El("li", []string{ClassItem, ClassEllipsis}, render.Text("span", "…")))
				continue
			}
			list.Append(link.page(page, active))
		}
	}
	list.Append(link.item(host.Translate("Pagination.next"), active+1, active >= last, ClassNext))

	root := render.El("div", []string{ClassRoot, node.String("className", "")}, list)
	if actionID != "" {
		root.SetAttr(ActionAttr, actionID)
	}
	if node.Bool("showPageInput", false) && actionID != "" {
		root.Append(jumpForm(host, actionID, active, last))
	}

	props := maps.Clone(node.Props)
	if props == nil {
		props = map[string]any{}
	}
	props["activePage"] = active
	props["lastPage"] = last
	props["mode"] = mode
	props["maxButton"] = maxButtons
	return root.Mark(Kind, props), nil
}

func dataInt(data map[string]any, key string, fallback int) int {
	if n, ok := schema.ToInt(data[key]); ok {
		return n
	}
	return fallback
}

type linker struct {
	actionID string
}

// Href builds the query string dispatching a page change.
func Href(actionID string, page int) string {
	values := url.Values{}
	values.Set(ActionParam, actionID)
	values.Set(PageParam, strconv.Itoa(page))
	return "?" + values.Encode()
}

func (l linker) page(page, active int) *render.Node {
	item := l.item(strconv.Itoa(page), page, false)
	if page == active {
		item.AddClass(ClassActive)
		item.Children[0].SetAttr("aria-current", "page")
	}
	return item
}

func (l linker) item(label string, target int, disabled bool, classes ...string) *render.Node {
	li := render.El("li", append([]string{ClassItem}, classes...))
	if disabled || l.actionID == "" {
		if disabled {
			li.AddClass(ClassDisabled)
		}
		li.Append(render.Text("span", label))
		return li
	}
	anchor := render.Text("a", label)
	anchor.SetAttr("href", Href(l.actionID, target))
	anchor.SetAttr("data-page", strconv.Itoa(target))
	return li.Append(anchor)
}

func jumpForm(host render.Host, actionID string, active, last int) *render.Node {
	form := render.El("form", []string{ClassJump})
	form.SetAttr("method", "get")

	action := &render.Node{Tag: "input"}
	action.SetAttr("type", "hidden").SetAttr("name", ActionParam).SetAttr("value", actionID)

	page := &render.Node{Tag: "input"}
	page.SetAttr("type", "number").
		SetAttr("name", PageParam).
		SetAttr("min", "1").
		SetAttr("max", strconv.Itoa(last)).
		SetAttr("value", strconv.Itoa(active))

	submit := render.Text("button", host.Translate("Pagination.goto"))
	submit.SetAttr("type", "submit")

	return form.Append(action, page, submit)
}
