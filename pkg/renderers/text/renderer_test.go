package text

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagewrap/pkg/engine"
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/testsupport"
	"github.com/goliatone/go-pagewrap/pkg/wrapper"
)

func TestRenderer_Pager(t *testing.T) {
	r := New(WithPlain())

	cases := []struct {
		name  string
		props map[string]any
		want  string
	}{
		{
			name:  "window with ellipses",
			props: map[string]any{"activePage": 5, "lastPage": 9, "maxButton": 5},
			want:  "‹ 1 … 4 [5] 6 … 9 ›",
		},
		{
			name:  "all pages fit",
			props: map[string]any{"activePage": 1, "lastPage": 3, "maxButton": 5},
			want:  "‹ [1] 2 3 ›",
		},
		{
			name:  "simple mode",
			props: map[string]any{"activePage": 2, "lastPage": 4, "mode": "simple"},
			want:  "‹ [2] ›",
		},
		{
			name:  "out of range active page is clamped",
			props: map[string]any{"activePage": 12, "lastPage": 2, "maxButton": 5},
			want:  "‹ 1 [2] ›",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Pager(tc.props); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	r := New(WithPlain())

	html := render.El("div", nil)
	html.HTML = "<p>Hi &amp; <strong>bye</strong></p>"

	tree := render.El("div", nil,
		render.Text("h1", "Orders"),
		render.Text("span", "a"),
		render.Text("span", "b"),
		html,
		render.Text("span", "Nothing here", wrapper.ClassPlaceholder),
	)

	got := r.Render(tree)
	want := "Orders\nab\nHi & bye\nNothing here"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_PaginatedWrapper(t *testing.T) {
	reg, err := engine.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	e := engine.New(reg)

	items := make([]any, 0, 7)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		items = append(items, map[string]any{"name": name})
	}

	tree, err := e.Render(context.Background(), schema.New(wrapper.Kind, schema.Props{
		"perPage":    3,
		"maxButtons": 5,
		"body": map[string]any{
			"type":  "each",
			"items": map[string]any{"type": "tpl", "tpl": "- ${name}"},
		},
	}), map[string]any{"items": items})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	got := New(WithPlain()).Render(tree)
	want := "‹ [1] 2 3 ›\n- a\n- b\n- c"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Golden(t *testing.T) {
	reg, err := engine.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	e := engine.New(reg)
	ctx := testsupport.Context()
	root := testsupport.MustLoadSchema(t, "testdata/orders.yaml")
	data := testsupport.MustLoadData(t, "testdata/orders.json")

	if _, err := e.Render(ctx, root, data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := e.Dispatch(ctx, "root/pager", 2); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	tree, err := e.Render(ctx, root, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	got := New(WithPlain()).Render(tree) + "\n"
	goldenPath := "testdata/orders.golden.txt"
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(got)) {
		return
	}
	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, goldenPath), got); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}
