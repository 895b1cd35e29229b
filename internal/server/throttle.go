package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle bounds failed login attempts per client address
type Throttle struct {
	// Every is the interval at which one failed attempt is forgiven
	Every time.Duration
	// Burst is the number of failures allowed before requests are refused
	Burst int
}

// DefaultThrottle allows five failures, then one more every ten seconds
var DefaultThrottle = Throttle{Every: 10 * time.Second, Burst: 5}

// loginLimiter keeps one token bucket per client. Only failed logins take
// tokens, so a client is refused once its failures outrun the refill.
type loginLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*rate.Limiter
}

func newLoginLimiter(t Throttle) *loginLimiter {
	return &loginLimiter{
		limit:   rate.Every(t.Every),
		burst:   t.Burst,
		clients: make(map[string]*rate.Limiter),
	}
}

// Blocked reports whether the client has no failures left
func (l *loginLimiter) Blocked(client string) bool {
	l.mu.Lock()
	lim, ok := l.clients[client]
	l.mu.Unlock()
	return ok && lim.Tokens() < 1
}

// Fail records a failed login. Clients without failures are not tracked.
func (l *loginLimiter) Fail(client string) {
	l.mu.Lock()
	lim, ok := l.clients[client]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.clients[client] = lim
	}
	l.mu.Unlock()
	lim.Allow()
}

// clientAddr returns the host part of the request's remote address
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
