// Package api provides the HTTP gateway to the LifeLink content API.
//
// The gateway is deliberately thin: it owns URL construction, authentication,
// JSON envelopes and error normalization, and nothing else. Caching, retries
// and lifecycle tracking belong to the store layer.
//
// # Endpoints
//
//   - GET    /<collection>           one page, {data: [...], meta: {pagination}}
//   - GET    /<collection>/<id>      one record, {data: {...}}
//   - POST   /<collection>           create, body {data: {...}}
//   - PUT    /<collection>/<id>      update, body {data: {...}}
//   - PATCH  /<collection>/<id>/<action>  status transition, action-specific body
//   - DELETE /<collection>/<id>      empty body on success
//   - DELETE /media/<id>             remove an uploaded asset
//
// List, Get, Create, Update and Action are generic top-level functions rather
// than methods because Go methods cannot introduce type parameters; the record
// type is chosen by the caller (internal/model types in practice).
//
// # Error normalization
//
// The server reports failures as {error:{message}} or occasionally as a bare
// JSON string. Both are folded into *RequestError; Message(err) gives the
// string the UI shows, falling back to "Request failed" for transport errors
// and unrecognized bodies. Callers therefore never branch on response shape.
//
// Every request carries Accept, User-Agent, an X-Request-ID (uuid) for server
// log correlation, and a bearer Authorization header when a token is
// configured.
package api
