package pager

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

type stubHost struct {
	data  map[string]any
	bound []func(int)
}

func (h *stubHost) Render(string, schema.Node, render.Overrides) (*render.Node, error) {
	return nil, nil
}
func (h *stubHost) Translate(key string) string { return key }
func (h *stubHost) Data() map[string]any        { return h.data }
func (h *stubHost) Bind(fn func(int)) string {
	h.bound = append(h.bound, fn)
	return "a1"
}

func pagerNode(props schema.Props) schema.Node {
	return schema.New(Kind, props)
}

func itemLabels(root *render.Node) []string {
	var labels []string
	list := root.Children[0]
	for _, li := range list.Children {
		labels = append(labels, li.Children[0].Text)
	}
	return labels
}

func TestRender_NormalMode(t *testing.T) {
	var switched []int
	host := &stubHost{}
	root, err := Render(host, pagerNode(schema.Props{
		"activePage":   3,
		"lastPage":     9,
		"maxButton":    5,
		"mode":         "normal",
		"onPageChange": func(page int) { switched = append(switched, page) },
		"className":    "PaginationWrapper-pager",
	}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]string{ClassRoot, "PaginationWrapper-pager"}, root.Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	want := []string{"Pagination.prev", "1", "2", "3", "4", "…", "9", "Pagination.next"}
	if diff := cmp.Diff(want, itemLabels(root)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	var active []*render.Node
	root.Walk(func(n *render.Node) bool {
		if n.HasClass(ClassActive) {
			active = append(active, n)
		}
		return true
	})
	if len(active) != 1 || active[0].Children[0].Text != "3" {
		t.Fatalf("expected page 3 active, got %v", active)
	}
	if href := active[0].Children[0].Attrs["href"]; href != "?action=a1&page=3" {
		t.Fatalf("unexpected href %q", href)
	}

	if root.Attrs[ActionAttr] != "a1" {
		t.Fatalf("expected action id on root, got %v", root.Attrs)
	}
	if len(host.bound) != 1 {
		t.Fatalf("expected onPageChange bound once, got %d", len(host.bound))
	}
	host.bound[0](7)
	if diff := cmp.Diff([]int{7}, switched); diff != "" {
		t.Fatalf("bound action mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SimpleModeAndBounds(t *testing.T) {
	host := &stubHost{}
	root, err := Render(host, pagerNode(schema.Props{
		"activePage":   1,
		"lastPage":     4,
		"mode":         ModeSimple,
		"onPageChange": func(int) {},
	}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"Pagination.prev", "1", "Pagination.next"}, itemLabels(root)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	prev := root.Children[0].Children[0]
	if !prev.HasClass(ClassDisabled) || prev.Children[0].Tag != "span" {
		t.Fatalf("expected disabled prev on first page, got %+v", prev)
	}
	next := root.Children[0].Children[2]
	if next.Children[0].Attrs["href"] != "?action=a1&page=2" {
		t.Fatalf("unexpected next href %q", next.Children[0].Attrs["href"])
	}
}

func TestRender_FallsBackToPaginationLocals(t *testing.T) {
	var switched []int
	host := &stubHost{data: map[string]any{
		"currentPage":  2,
		"lastPage":     4,
		"onPageChange": func(page int) { switched = append(switched, page) },
	}}
	root, err := Render(host, pagerNode(nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]string{"Pagination.prev", "1", "2", "3", "4", "Pagination.next"}, itemLabels(root)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if root.Attrs[ActionAttr] != "a1" || len(host.bound) != 1 {
		t.Fatalf("expected the locals handler to be bound, attrs %v", root.Attrs)
	}
	host.bound[0](3)
	if diff := cmp.Diff([]int{3}, switched); diff != "" {
		t.Fatalf("switch mismatch (-want +got):\n%s", diff)
	}
	if root.Kind != Kind || root.Props["activePage"] != 2 || root.Props["lastPage"] != 4 {
		t.Fatalf("expected resolved props on the root, got %s %v", root.Kind, root.Props)
	}
}

func TestRender_PropsWinOverLocals(t *testing.T) {
	host := &stubHost{data: map[string]any{"currentPage": 3, "lastPage": 9}}
	root, err := Render(host, pagerNode(schema.Props{"activePage": 1, "lastPage": 2}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"Pagination.prev", "1", "2", "Pagination.next"}, itemLabels(root)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_WithoutHandlerRendersStaticItems(t *testing.T) {
	host := &stubHost{}
	root, err := Render(host, pagerNode(schema.Props{"activePage": 2, "lastPage": 3, "showPageInput": true}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(host.bound) != 0 {
		t.Fatalf("expected nothing bound")
	}
	root.Walk(func(n *render.Node) bool {
		if n.Tag == "a" || n.Tag == "form" {
			t.Fatalf("expected no links or forms without a handler, found %s", n.Tag)
		}
		return true
	})
}

func TestRender_JumpForm(t *testing.T) {
	host := &stubHost{}
	root, err := Render(host, pagerNode(schema.Props{
		"activePage":    2,
		"lastPage":      6,
		"showPageInput": true,
		"onPageChange":  func(int) {},
	}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected list and jump form, got %d children", len(root.Children))
	}
	form := root.Children[1]
	if !form.HasClass(ClassJump) {
		t.Fatalf("expected jump form, got %+v", form)
	}
	input := form.Children[1]
	want := map[string]string{"type": "number", "name": PageParam, "min": "1", "max": "6", "value": "2"}
	if diff := cmp.Diff(want, input.Attrs); diff != "" {
		t.Fatalf("input attrs mismatch (-want +got):\n%s", diff)
	}
}
