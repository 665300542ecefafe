// Package ui renders the admin console with bubbletea.
//
// The view is a row of resource tabs, a table for the active resource, and a
// footer that multiplexes search input, delete confirmation, toasts and page
// position. The view never touches entity types: each tab is a Resource, an
// interface the app layer adapts its typed collections to.
//
// Data flows one way. Key handlers call Resource methods (SetSearch,
// NextPage, CycleStatusFilter, ...) which mutate controller state and kick
// off fetches; a periodic tick pulls the latest snapshot back into the
// table. Store notifications cross into the event loop through a buffered
// channel so collection goroutines never block on the renderer.
package ui
