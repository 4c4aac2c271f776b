// Package clientip resolves the address of the client behind a request.
//
// GetIP prefers proxy headers (X-Forwarded-For, then X-Real-IP) and falls
// back to RemoteAddr. Header values that are not valid IPs are skipped, so a
// forged header cannot produce an arbitrary key. Middleware stores the result
// in the request context for handlers and LoggerExtractor.
package clientip
