package store

import (
	"maps"
	"reflect"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// KindPagination is the store kind components declare to receive a
// *Pagination instance.
const KindPagination = "PaginationStore"

// Keys added to Locals next to the page records.
const (
	LocalCurrentPage = "currentPage"
	LocalLastPage    = "lastPage"
	LocalTotal       = "total"
	// LocalPageChange holds SwitchTo so a pager placed in the body can page
	// the store.
	LocalPageChange = "onPageChange"
)

// Props is the configuration snapshot pushed into a store by SyncProps.
type Props map[string]any

// Option configures a Pagination store.
type Option func(*Pagination)

// WithLogger attaches a logger used to trace synchronisation.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pagination) {
		p.logger = logger
	}
}

// Pagination slices an input collection found in ambient data into pages.
// It is not safe for concurrent use; hosts serialize access.
type Pagination struct {
	page       int
	perPage    int
	maxButtons int
	mode       string
	inputName  string
	outputName string
	data       map[string]any

	logger zerolog.Logger
}

// NewPagination returns a store on page 1 with default sizing.
func NewPagination(options ...Option) *Pagination {
	p := &Pagination{
		page:       DefaultPage,
		perPage:    DefaultPerPage,
		maxButtons: DefaultMaxButtons,
		mode:       DefaultMode,
		inputName:  DefaultFieldName,
		outputName: DefaultFieldName,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// SyncProps copies every watched field whose value changed between prev and
// next into the store. A nil prev means first synchronisation: every watched
// field present in next is applied. Fields the store does not know are
// ignored.
func (p *Pagination) SyncProps(next, prev Props, watched []string) {
	applied := make([]string, 0, len(watched))
	for _, field := range watched {
		value, ok := next[field]
		if !ok {
			continue
		}
		if prev != nil {
			if old, had := prev[field]; had && reflect.DeepEqual(old, value) {
				continue
			}
		}
		if p.apply(field, value) {
			applied = append(applied, field)
		}
	}

	p.logger.Debug().
		Strs("fields", applied).
		Bool("initial", prev == nil).
		Int("perPage", p.perPage).
		Msg("pagination store synced")
}

func (p *Pagination) apply(field string, value any) bool {
	switch field {
	case "perPage":
		n, _ := schema.ToInt(value)
		p.perPage = NormalizePerPage(n)
	case "maxButtons":
		n, _ := schema.ToInt(value)
		p.maxButtons = NormalizeMaxButtons(n)
	case "mode":
		p.mode = stringOr(value, DefaultMode)
	case "inputName":
		p.inputName = stringOr(value, DefaultFieldName)
	case "outputName":
		p.outputName = stringOr(value, DefaultFieldName)
	default:
		return false
	}
	return true
}

// SetData replaces the ambient data the input collection is read from.
func (p *Pagination) SetData(data map[string]any) {
	p.data = data
}

// Data returns the ambient data last handed to the store.
func (p *Pagination) Data() map[string]any {
	return p.data
}

// SwitchTo requests a page change. Out of range pages are clamped on read so a
// later data change cannot leave the store pointing past the last page.
func (p *Pagination) SwitchTo(page int) {
	p.page = max(page, DefaultPage)
	p.logger.Debug().Int("page", p.page).Msg("pagination store switched page")
}

// Page returns the active page, always within [1, LastPage()].
func (p *Pagination) Page() int {
	return lo.Clamp(p.page, DefaultPage, p.LastPage())
}

// PerPage returns the effective page size.
func (p *Pagination) PerPage() int {
	return p.perPage
}

// LastPage returns the total page count, at least 1 even for empty input.
func (p *Pagination) LastPage() int {
	total := len(p.InputItems())
	pages := (total + p.perPage - 1) / p.perPage
	return max(pages, 1)
}

// Mode returns the pager display mode.
func (p *Pagination) Mode() string {
	return p.mode
}

// MaxButtons returns the effective pager button cap.
func (p *Pagination) MaxButtons() int {
	return p.maxButtons
}

// InputName returns the data field the collection is read from.
func (p *Pagination) InputName() string {
	return p.inputName
}

// OutputName returns the field the current page is exposed under.
func (p *Pagination) OutputName() string {
	return p.outputName
}

// Total returns the size of the input collection.
func (p *Pagination) Total() int {
	return len(p.InputItems())
}

// InputItems resolves the input collection. Missing or non-list values yield
// an empty collection.
func (p *Pagination) InputItems() []any {
	raw, ok := schema.Lookup(p.data, p.inputName)
	if !ok {
		return nil
	}
	return toSlice(raw)
}

// Items returns the records of the active page.
func (p *Pagination) Items() []any {
	items := p.InputItems()
	offset := (p.Page() - 1) * p.perPage
	return lo.Subset(items, offset, uint(p.perPage))
}

// Locals returns the ambient data scoped to the active page: a copy of the
// store data with the page records under OutputName plus currentPage, lastPage,
// total and the onPageChange switch.
func (p *Pagination) Locals() map[string]any {
	locals := make(map[string]any, len(p.data)+5)
	maps.Copy(locals, p.data)
	locals[LocalCurrentPage] = p.Page()
	locals[LocalLastPage] = p.LastPage()
	locals[LocalTotal] = p.Total()
	locals[LocalPageChange] = p.SwitchTo
	locals[p.outputName] = p.Items()
	return locals
}

func toSlice(raw any) []any {
	switch list := raw.(type) {
	case nil:
		return nil
	case []any:
		return list
	case []map[string]any:
		return lo.Map(list, func(item map[string]any, _ int) any { return item })
	}

	value := reflect.ValueOf(raw)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, value.Len())
	for idx := range out {
		out[idx] = value.Index(idx).Interface()
	}
	return out
}

func stringOr(value any, fallback string) string {
	if str, ok := value.(string); ok {
		if trimmed := strings.TrimSpace(str); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
