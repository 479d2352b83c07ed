package middleware

import (
	"task-tracker/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
