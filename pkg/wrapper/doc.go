// Package wrapper implements the "pagination-wrapper" component: a container
// that slices a named input collection into pages through a pagination store
// and exposes the active page to its nested body, optionally rendering a pager
// above or below it.
//
// The component is split in two pieces:
//
//   - Resolver pushes the watched subset of the configuration into the store
//     on attach and whenever one of the watched fields changes.
//   - Compose turns the configuration and the store state into the rendered
//     tree. It is a pure function evaluated on every render pass; all paging
//     state lives in the store.
//
// Register binds the component to a render.Registry under Kind together with
// the store kind the host must provide.
package wrapper
