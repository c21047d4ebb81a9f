// Package basic provides the small building blocks schema documents use to
// display records: "tpl" for interpolated text or sanitized markup, "each"
// for repeating a schema over a list and "container" for grouping.
package basic
