// Package intake exposes the batch processor over HTTP.
//
// Routes:
//
//	POST /validate   body: array of records (JSON, or YAML with a YAML content type)
//	GET  /healthz    liveness probe
//
// Responses use a small JSON envelope: {"data": ...} on success and
// {"error": {"code": ..., "message": ...}} otherwise. A batch whose records
// all fail is still a 200; only an unreadable body is a client error.
package intake
