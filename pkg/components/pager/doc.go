// Package pager renders the "pagination" control: numbered page links with
// previous/next controls, ellipsis for skipped ranges and an optional jump
// form. Page changes are routed through an action bound on the host.
package pager
