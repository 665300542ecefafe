// Package controller binds table UI state to an entity collection.
//
// A Controller owns what the table widget knows: column filters, the sort
// spec, the zero-based page cursor and the free-text search term. Any change
// re-invokes the collection's List through the query builder. Two rules keep
// the cursor honest: changing the page size resets to the first page, and so
// does changing a filter or the search term, since the old offset is
// meaningless against a different result set.
//
// Search input is debounced over a quiet period so typing produces one
// request, not one per keystroke.
//
// Most resources are server-paginated: the server's pagination metadata is
// authoritative and every page is a fetch. Small reference collections can
// opt into client pagination, where the first fetch loads everything and
// Rows/Meta slice and count locally.
//
// After a successful delete the controller refetches the current page rather
// than leaving a short page behind.
package controller
