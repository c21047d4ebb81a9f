package wrapper

import (
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

const (
	ClassWrapper     = "PaginationWrapper"
	ClassPager       = "PaginationWrapper-pager"
	ClassPlaceholder = "PaginationWrapper-placeholder"

	PlaceholderKey = "PaginationWrapper.placeholder"

	// PagerKind is the component kind rendered for the pager.
	PagerKind = "pagination"

	RegionPager = "pager"
	RegionBody  = "body"
)

// View is the read side of the pagination store plus its page switch.
type View interface {
	Page() int
	LastPage() int
	Mode() string
	MaxButtons() int
	Locals() map[string]any
	SwitchTo(page int)
}

// Store is everything the wrapper needs from its pagination store.
type Store interface {
	Syncer
	View
}

// BuildPager renders the pager for the current pass, or returns nil when the
// position is none. The result is computed once and placed by Compose.
func BuildPager(cfg Config, view View, host render.Host) (*render.Node, error) {
	if cfg.Position == PositionNone {
		return nil, nil
	}

	overrides := render.Overrides{
		"activePage":   view.Page(),
		"lastPage":     view.LastPage(),
		"mode":         view.Mode(),
		"maxButton":    view.MaxButtons(),
		"onPageChange": view.SwitchTo,
		"className":    ClassPager,
	}
	if cfg.ShowPageInput {
		overrides["showPageInput"] = true
	}
	return host.Render(RegionPager, schema.New(PagerKind, nil), overrides)
}

// Compose builds the wrapper tree: the pager in the top slot, the body (or
// the placeholder) and the pager in the bottom slot. At most one slot is
// filled because a single position cannot be both.
func Compose(cfg Config, view View, host render.Host) (*render.Node, error) {
	pager, err := BuildPager(cfg, view, host)
	if err != nil {
		return nil, err
	}

	content, err := composeContent(cfg, view, host)
	if err != nil {
		return nil, err
	}

	root := render.El("div", []string{ClassWrapper, cfg.Class})
	if cfg.Position == PositionTop {
		root.Append(pager)
	}
	root.Append(content)
	if cfg.Position == PositionBottom {
		root.Append(pager)
	}
	return root, nil
}

func composeContent(cfg Config, view View, host render.Host) (*render.Node, error) {
	if !cfg.HasBody() {
		return render.Text("span", host.Translate(PlaceholderKey), ClassPlaceholder), nil
	}
	return host.Render(RegionBody, schema.Fragment(cfg.Body...), render.Overrides{
		render.OverrideData: view.Locals(),
	})
}
