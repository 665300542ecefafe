// Package store implements the per-entity collection state and its
// operations: the engine behind every list screen in the console.
//
// # Shape
//
// One Collection[T] exists per entity type, constructed once at startup and
// injected where needed. It owns a single State[T]:
//
//   - Items: the current page, in server-returned order
//   - PageMeta: totals and page cursors from the server
//   - Selected: at most one detail record
//   - List / Mutation: independent request-lifecycle statuses
//   - Stats: named aggregate counters from auxiliary count queries
//
// All state transitions go through Reduce, a pure (state, event) -> state
// function. Collection methods fetch, then dispatch events under the
// collection's lock; the lock makes the reducer the single writer no matter
// how many goroutines call in.
//
// # Lifecycle
//
// Every operation follows Requested -> (Resolved | Rejected), exactly once
// per instance. List failures keep the previous page visible and surface the
// server message through the Notifier; loading flags always reset, so the UI
// cannot wedge in a loading state. Nothing retries automatically.
//
// # Racing list requests
//
// List fetches are not cancelled when a newer one is issued. Instead every
// request carries a monotonically increasing sequence number and Reduce drops
// resolutions older than the latest issued request. The winner is the newest
// request, not whichever response happened to arrive last.
//
// # Mutations
//
// Update and Transition merge the server response into matching local
// records via the entity's Merge; Delete removes by identity and is
// idempotent. Create may chain dependent sub-requests (Steps), each fed the
// identity returned by the previous one. Sub-requests run strictly
// sequentially and are not rolled back on failure: if step N fails, steps
// 1..N-1 have already taken effect server-side and the operation as a whole
// is reported as failed.
//
// Successful mutations optionally record an activity-log entry through the
// AuditHook. The hook is fire-and-forget: its outcome never affects the
// primary operation's result.
package store
