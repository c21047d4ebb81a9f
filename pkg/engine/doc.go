// Package engine is the host renderer. It walks a schema tree, keeps one
// component instance per region path across passes, hands each component a
// scoped render.Host and dispatches bound page-change actions between passes.
package engine
