package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagewrap/pkg/components/pager"
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/store"
	"github.com/goliatone/go-pagewrap/pkg/wrapper"
)

type countingStore struct {
	*store.Pagination
	syncs int
}

func (s *countingStore) SyncProps(next, prev store.Props, watched []string) {
	s.syncs++
	s.Pagination.SyncProps(next, prev, watched)
}

func newEngine(t *testing.T, options ...Option) *Engine {
	t.Helper()
	reg, err := NewDefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return New(reg, options...)
}

func countingStores() *store.Registry {
	stores := store.NewRegistry()
	stores.MustRegister(store.KindPagination, func() any {
		return &countingStore{Pagination: store.NewPagination()}
	})
	return stores
}

func records(n int) map[string]any {
	items := make([]any, n)
	for i := range items {
		items[i] = map[string]any{"name": fmt.Sprintf("item %d", i)}
	}
	return map[string]any{"items": items}
}

func listSchema(props schema.Props) schema.Node {
	merged := schema.Props{
		"body": []any{
			map[string]any{
				"type":  "each",
				"name":  "items",
				"items": map[string]any{"type": "tpl", "tpl": "${name}"},
			},
		},
	}
	for k, v := range props {
		merged[k] = v
	}
	return schema.New(wrapper.Kind, merged)
}

func texts(tree *render.Node, kind string) []string {
	var out []string
	for _, node := range tree.FindKind(kind) {
		out = append(out, node.Text)
	}
	return out
}

func pagerProps(t *testing.T, tree *render.Node) map[string]any {
	t.Helper()
	pagers := tree.FindKind(pager.Kind)
	if len(pagers) != 1 {
		t.Fatalf("expected 1 pager, got %d", len(pagers))
	}
	return pagers[0].Props
}

func TestEngine_RenderPagedList(t *testing.T) {
	e := newEngine(t)
	tree, err := e.Render(context.Background(), listSchema(schema.Props{"perPage": 10}), records(45))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if tree.Kind != wrapper.Kind || !tree.HasClass(wrapper.ClassWrapper) {
		t.Fatalf("expected wrapper root, got kind %q classes %v", tree.Kind, tree.Classes)
	}

	props := pagerProps(t, tree)
	if props["activePage"] != 1 || props["lastPage"] != 5 {
		t.Fatalf("unexpected pager props: %v", props)
	}

	got := texts(tree, "tpl")
	want := []string{"item 0", "item 1", "item 2", "item 3", "item 4", "item 5", "item 6", "item 7", "item 8", "item 9"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("page items mismatch (-want +got):\n%s", diff)
	}

	if tree.Children[0].Kind != pager.Kind {
		t.Fatalf("expected pager before content for default position")
	}
}

func TestEngine_DispatchSwitchesPage(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	root := listSchema(schema.Props{"perPage": 10})
	data := records(45)

	if _, err := e.Render(ctx, root, data); err != nil {
		t.Fatalf("render: %v", err)
	}

	actions := e.Actions()
	if diff := cmp.Diff([]string{"root/pager"}, actions); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}

	if err := e.Dispatch(ctx, actions[0], 3); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	tree, err := e.Render(ctx, root, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := pagerProps(t, tree)["activePage"]; got != 3 {
		t.Fatalf("expected active page 3, got %v", got)
	}
	if got := texts(tree, "tpl"); len(got) != 10 || got[0] != "item 20" {
		t.Fatalf("unexpected page 3 items: %v", got)
	}

	if err := e.Dispatch(ctx, "root/missing", 1); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestEngine_SyncOnMountAndOnWatchedChange(t *testing.T) {
	e := newEngine(t, WithStores(countingStores()))
	ctx := context.Background()
	data := records(30)

	if _, err := e.Render(ctx, listSchema(schema.Props{"perPage": 10}), data); err != nil {
		t.Fatalf("render: %v", err)
	}
	raw, ok := e.Store(RootPath)
	if !ok {
		t.Fatalf("expected store at root")
	}
	st := raw.(*countingStore)
	if st.syncs != 1 {
		t.Fatalf("expected one sync on mount, got %d", st.syncs)
	}

	if _, err := e.Render(ctx, listSchema(schema.Props{"perPage": 10, "className": "wide"}), data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if st.syncs != 1 {
		t.Fatalf("expected no sync for unwatched change, got %d", st.syncs)
	}

	tree, err := e.Render(ctx, listSchema(schema.Props{"perPage": 15}), data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if st.syncs != 2 {
		t.Fatalf("expected sync after perPage change, got %d", st.syncs)
	}
	if got := pagerProps(t, tree)["lastPage"]; got != 2 {
		t.Fatalf("expected 2 pages at 15 per page, got %v", got)
	}
}

func TestEngine_PositionNoneAndBottom(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	tree, err := e.Render(ctx, listSchema(schema.Props{"position": "none"}), records(12))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if n := len(tree.FindKind(pager.Kind)); n != 0 {
		t.Fatalf("expected no pager, got %d", n)
	}
	if n := len(e.Actions()); n != 0 {
		t.Fatalf("expected no bound actions, got %d", n)
	}

	tree, err = e.Render(ctx, listSchema(schema.Props{"position": "bottom"}), records(12))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	last := tree.Children[len(tree.Children)-1]
	if last.Kind != pager.Kind {
		t.Fatalf("expected pager in the bottom slot, got %q", last.Kind)
	}
}

func TestEngine_BodyPagerDrivesStoreWhenPositionNone(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	root := schema.New(wrapper.Kind, schema.Props{
		"position": "none",
		"perPage":  10,
		"body": []any{
			map[string]any{"type": "pagination"},
			map[string]any{
				"type":  "each",
				"name":  "items",
				"items": map[string]any{"type": "tpl", "tpl": "${name}"},
			},
		},
	})
	data := records(25)

	tree, err := e.Render(ctx, root, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	props := pagerProps(t, tree)
	if props["activePage"] != 1 || props["lastPage"] != 3 {
		t.Fatalf("unexpected body pager props: %v", props)
	}
	if diff := cmp.Diff([]string{"root/body/0"}, e.Actions()); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}

	if err := e.Dispatch(ctx, "root/body/0", 3); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	tree, err = e.Render(ctx, root, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := pagerProps(t, tree)["activePage"]; got != 3 {
		t.Fatalf("expected body pager on page 3, got %v", got)
	}
	want := []string{"item 20", "item 21", "item 22", "item 23", "item 24"}
	if diff := cmp.Diff(want, texts(tree, "tpl")); diff != "" {
		t.Fatalf("page items mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_PlaceholderTranslated(t *testing.T) {
	e := newEngine(t, WithLocale("zh-CN"))
	tree, err := e.Render(context.Background(), schema.New(wrapper.Kind, nil), records(3))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var placeholder *render.Node
	tree.Walk(func(n *render.Node) bool {
		if n.HasClass(wrapper.ClassPlaceholder) {
			placeholder = n
			return false
		}
		return true
	})
	if placeholder == nil {
		t.Fatalf("expected placeholder node")
	}
	want := render.DefaultMessages["zh-CN"][wrapper.PlaceholderKey]
	if placeholder.Text != want {
		t.Fatalf("expected %q, got %q", want, placeholder.Text)
	}
}

func TestEngine_ReleasesUnvisitedInstances(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	if _, err := e.Render(ctx, listSchema(nil), records(5)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, ok := e.Store(RootPath); !ok {
		t.Fatalf("expected wrapper store to be mounted")
	}

	if _, err := e.Render(ctx, schema.New("tpl", schema.Props{"tpl": "done"}), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{RootPath}, e.Mounted()); diff != "" {
		t.Fatalf("mounted mismatch (-want +got):\n%s", diff)
	}
	if _, ok := e.Store(RootPath); ok {
		t.Fatalf("expected wrapper store to be released")
	}
}

func TestEngine_Errors(t *testing.T) {
	e := newEngine(t)

	_, err := e.Render(context.Background(), schema.New("chart", nil), nil)
	if !errors.Is(err, render.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}

	stores := store.NewRegistry()
	e = newEngine(t, WithStores(stores))
	_, err = e.Render(context.Background(), listSchema(nil), nil)
	if !errors.Is(err, render.ErrUnknownStoreKind) {
		t.Fatalf("expected ErrUnknownStoreKind, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Render(ctx, listSchema(nil), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
