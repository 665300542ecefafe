// Package app assembles the application: configuration, API client, audit
// logger, one typed collection per entity, and the UI-facing resource
// adapters, all hung off an explicit Context built once at startup. There
// is no global state; everything the rest of the program needs is passed
// down from here.
//
// The resource adapters in resource.go bridge the typed collections to the
// untyped ui.Resource interface, so the entity list lives in exactly one
// place (buildResources) and the view stays generic.
package app
