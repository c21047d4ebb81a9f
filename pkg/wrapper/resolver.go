package wrapper

import (
	"github.com/goliatone/go-pagewrap/pkg/store"
)

// Watched configuration fields.
const (
	FieldPerPage    = "perPage"
	FieldMode       = "mode"
	FieldMaxButtons = "maxButtons"
	FieldInputName  = "inputName"
	FieldOutputName = "outputName"
)

// Layout-only configuration fields.
const (
	FieldPosition      = "position"
	FieldShowPageInput = "showPageInput"
	FieldClassName     = "className"
	FieldBody          = "body"
)

// WatchedFields is the fixed set of configuration fields whose change
// triggers a store reconciliation. position, body, showPageInput and className
// are layout-only.
var WatchedFields = []string{FieldPerPage, FieldMode, FieldMaxButtons, FieldInputName, FieldOutputName}

// Syncer is the reconciliation side of the pagination store.
type Syncer interface {
	SyncProps(next, prev store.Props, watched []string)
}

// Resolver forwards configuration to the store at the two lifecycle points
// the host calls it from.
type Resolver struct {
	store Syncer
}

// NewResolver builds a resolver driving s.
func NewResolver(s Syncer) *Resolver {
	return &Resolver{store: s}
}

// OnAttach performs the initial synchronisation. prev is passed as nil.
func (r *Resolver) OnAttach(cfg Config) {
	r.sync(nil, &cfg)
}

// OnConfigChange synchronises when a watched field differs between prev and
// next. It issues at most one SyncProps call.
func (r *Resolver) OnConfigChange(prev, next Config) {
	r.sync(&prev, &next)
}

func (r *Resolver) sync(prev, next *Config) {
	if prev != nil && !WatchedChanged(*prev, *next) {
		return
	}

	var prevProps store.Props
	if prev != nil {
		prevProps = prev.Props()
	}
	r.store.SyncProps(next.Props(), prevProps, watchedCopy())
}

// WatchedChanged reports whether any watched field differs between a and b.
func WatchedChanged(a, b Config) bool {
	return a.PerPage != b.PerPage ||
		a.Mode != b.Mode ||
		a.MaxButtons != b.MaxButtons ||
		a.InputName != b.InputName ||
		a.OutputName != b.OutputName
}

func watchedCopy() []string {
	return append([]string(nil), WatchedFields...)
}
