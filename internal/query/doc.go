// Package query builds content-API query parameters from UI list state.
//
// The content API accepts a nested filter expression alongside pagination,
// sort and populate directives:
//
//	GET /donors?filters[bloodGroup][$eq]=O%2B&pagination[page]=1&pagination[pageSize]=10&sort=name:ASC
//
// Build is the only entry point. It maps:
//
//   - a filter with one value to an {$eq} clause keyed by field
//   - a filter with several values to an $or group of {$eq} clauses
//   - distinct filters to sibling keys (implicit AND)
//   - a free-text search term to an $or group of {$like} clauses over the
//     resource's searchable fields, ANDed with the structured filters
//   - zero-based UI page index to the API's one-based page number
//   - a sort spec to the "field:ASC|DESC" string form
//
// Field names are never validated here; the server decides what is queryable.
// Build performs no I/O and Encode emits map keys in sorted order, so the
// resulting query string is reproducible byte for byte.
package query
