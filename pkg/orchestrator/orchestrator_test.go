package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagewrap/pkg/renderers/text"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

const listSchema = `
type: pagination-wrapper
perPage: 2
position: bottom
body:
  - type: each
    items:
      type: tpl
      tpl: "${name}"
`

const listData = `{"items":[{"name":"one"},{"name":"two"},{"name":"three"}]}`

func writeFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	dataPath := filepath.Join(dir, "data.json")
	if err := os.WriteFile(schemaPath, []byte(listSchema), 0o600); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	if err := os.WriteFile(dataPath, []byte(listData), 0o600); err != nil {
		t.Fatalf("write data: %v", err)
	}
	return schemaPath, dataPath
}

func TestGenerate_TextSecondPage(t *testing.T) {
	schemaPath, dataPath := writeFiles(t)
	o := New(WithTextRenderer(text.New(text.WithPlain())))

	out, err := o.Generate(context.Background(), Request{
		SchemaPath: schemaPath,
		DataPath:   dataPath,
		Page:       2,
		Format:     FormatText,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := "three\n‹ 1 [2] ›"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ReusedOrchestratorResetsPage(t *testing.T) {
	schemaPath, dataPath := writeFiles(t)
	o := New(WithTextRenderer(text.New(text.WithPlain())))

	cases := []struct {
		page int
		want string
	}{
		{page: 2, want: "three\n‹ 1 [2] ›"},
		{page: 1, want: "one\ntwo\n‹ [1] 2 ›"},
		{page: 2, want: "three\n‹ 1 [2] ›"},
		{page: 0, want: "one\ntwo\n‹ [1] 2 ›"},
	}
	for _, tc := range cases {
		out, err := o.Generate(context.Background(), Request{
			SchemaPath: schemaPath,
			DataPath:   dataPath,
			Page:       tc.page,
			Format:     FormatText,
		})
		if err != nil {
			t.Fatalf("page %d: generate: %v", tc.page, err)
		}
		if diff := cmp.Diff(tc.want, string(out)); diff != "" {
			t.Fatalf("page %d: output mismatch (-want +got):\n%s", tc.page, diff)
		}
	}
}

func TestGenerate_HTMLDocument(t *testing.T) {
	schemaPath, dataPath := writeFiles(t)

	out, err := New().Generate(context.Background(), Request{
		SchemaPath: schemaPath,
		DataPath:   dataPath,
		Document:   true,
		Title:      "List",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	doc := string(out)
	for _, fragment := range []string{"<title>List</title>", "one", "two", `class="Pagination PaginationWrapper-pager"`} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, doc)
		}
	}
	if strings.Contains(doc, "three") {
		t.Fatalf("expected only the first page:\n%s", doc)
	}
}

func TestGenerate_OverlayTransformer(t *testing.T) {
	overlay, err := NewOverlayTransformerFromFS(fstest.MapFS{
		"overlay.yaml": &fstest.MapFile{Data: []byte("items:\n  - name: replaced\n")},
	}, "overlay.yaml")
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}

	root, err := schema.Parse([]byte(listSchema), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	data := map[string]any{"items": []any{map[string]any{"name": "original"}}}

	out, err := New(WithTransformer(overlay), WithDefaultFormat(FormatText)).Generate(context.Background(), Request{
		Schema: &root,
		Data:   data,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), "replaced") {
		t.Fatalf("expected overlay data, got %q", out)
	}
	if data["items"].([]any)[0].(map[string]any)["name"] != "original" {
		t.Fatalf("expected caller data to stay untouched")
	}
}

func TestGenerate_Errors(t *testing.T) {
	tpl := schema.New("tpl", schema.Props{"tpl": "plain"})
	transformErr := errors.New("boom")

	cases := []struct {
		name    string
		options []Option
		req     Request
		want    string
	}{
		{name: "missing schema", req: Request{}, want: "schema or schema path is required"},
		{name: "unknown format", req: Request{Schema: &tpl, Format: "pdf"}, want: `unknown format "pdf"`},
		{name: "page without pager", req: Request{Schema: &tpl, Page: 3}, want: "no pager is bound"},
		{name: "missing file", req: Request{SchemaPath: filepath.Join(t.TempDir(), "nope.yaml")}, want: "load schema"},
		{
			name: "transformer failure",
			options: []Option{WithTransformer(TransformerFunc(func(context.Context, map[string]any) error {
				return transformErr
			}))},
			req:  Request{Schema: &tpl},
			want: "transform data: boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.options...).Generate(context.Background(), tc.req)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
