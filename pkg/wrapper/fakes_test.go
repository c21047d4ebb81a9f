package wrapper

import (
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/store"
)

type syncCall struct {
	next    store.Props
	prev    store.Props
	watched []string
}

type fakeStore struct {
	page       int
	lastPage   int
	mode       string
	maxButtons int
	locals     map[string]any
	switched   []int
	syncs      []syncCall
}

func (s *fakeStore) SyncProps(next, prev store.Props, watched []string) {
	s.syncs = append(s.syncs, syncCall{next: next, prev: prev, watched: watched})
}

func (s *fakeStore) Page() int              { return s.page }
func (s *fakeStore) LastPage() int          { return s.lastPage }
func (s *fakeStore) Mode() string           { return s.mode }
func (s *fakeStore) MaxButtons() int        { return s.maxButtons }
func (s *fakeStore) Locals() map[string]any { return s.locals }
func (s *fakeStore) SwitchTo(page int)      { s.switched = append(s.switched, page) }

type renderCall struct {
	region    string
	node      schema.Node
	overrides render.Overrides
}

// fakeHost renders every call into a node tagged with the region so tests can
// locate slots, and keeps the call for inspection.
type fakeHost struct {
	calls []renderCall
	err   error
}

func (h *fakeHost) Render(region string, node schema.Node, overrides render.Overrides) (*render.Node, error) {
	h.calls = append(h.calls, renderCall{region: region, node: node, overrides: overrides})
	if h.err != nil {
		return nil, h.err
	}
	out := render.El("section", []string{"region-" + region})
	out.Kind = node.Type
	out.Props = map[string]any(overrides)
	return out, nil
}

func (h *fakeHost) Translate(key string) string { return "t:" + key }

func (h *fakeHost) Data() map[string]any { return nil }

func (h *fakeHost) Bind(func(int)) string { return "action-0" }

func (h *fakeHost) regionCalls(region string) []renderCall {
	var out []renderCall
	for _, call := range h.calls {
		if call.region == region {
			out = append(out, call)
		}
	}
	return out
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		page:       2,
		lastPage:   5,
		mode:       "normal",
		maxButtons: 50,
		locals:     map[string]any{"items": []any{"a", "b"}, "currentPage": 2},
	}
}

func bodyNode() []any {
	return []any{map[string]any{"type": "tpl", "text": "${name}"}}
}
