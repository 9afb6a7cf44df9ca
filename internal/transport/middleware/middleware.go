package middleware

import "net/http"

// Middleware wraps an http.Handler. It matches chi's Use and With signatures.
type Middleware = func(http.Handler) http.Handler
