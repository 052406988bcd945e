// Package controller contains HTTP middlewares and helper handlers used by the
// admin server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecovery: Turns a handler panic into a 500 response.
//
// Provided helpers:
//   - RegisterPprof: Mounts net/http/pprof handlers under /debug/pprof/.
//   - WriteJSON, WriteError: Render responses and semantic errors as JSON.
package controller
