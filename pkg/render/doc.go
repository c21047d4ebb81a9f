// Package render defines the contracts shared by the rendering engine and the
// components it dispatches to: the rendered node tree, the Host capability a
// component renders through, the kind registry and the translation helpers.
package render
