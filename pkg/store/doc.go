// Package store provides the state containers components declare through
// their StoreKind. The pagination store owns the current page, the page size
// and the already paginated view of an input collection; components only push
// configuration into it and read results back.
package store
