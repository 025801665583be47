package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a peer exceeds its request budget.
var ErrRateLimited = errors.New("rate limit exceeded")

const bucketTTL = 5 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter keeps one token bucket per client address. The address is the
// connection peer unless that peer is a trusted proxy, in which case it is
// the last hop the proxy appended to X-Forwarded-For.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	now       func() time.Time
	trusted   map[string]bool

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
}

// NewRateLimiter allows perSecond requests per client with bursts of burst.
// A non-positive perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
		trusted:   make(map[string]bool),
	}
}

// TrustProxies marks peer IPs whose X-Forwarded-For header is believed.
func (l *RateLimiter) TrustProxies(ips ...string) *RateLimiter {
	for _, ip := range ips {
		if ip = strings.TrimSpace(ip); ip != "" {
			l.trusted[ip] = true
		}
	}
	return l
}

// Allow reports whether client may make a request now. A nil limiter
// allows everything.
func (l *RateLimiter) Allow(client string) bool {
	if l == nil || l.perSecond <= 0 {
		return true
	}
	if client == "" {
		client = "unknown"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) > time.Minute {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > bucketTTL {
				delete(l.buckets, k)
			}
		}
		l.lastPrune = now
	}

	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.perSecond, l.burst)}
		l.buckets[client] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Interceptor rejects calls from clients over budget with ResourceExhausted.
func (l *RateLimiter) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !l.Allow(l.clientIP(req.Peer().Addr, req.Header())) {
				return nil, connect.NewError(connect.CodeResourceExhausted, ErrRateLimited)
			}
			return next(ctx, req)
		}
	}
}

func (l *RateLimiter) clientIP(peerAddr string, header http.Header) string {
	host, _, err := net.SplitHostPort(peerAddr)
	if err != nil {
		host = peerAddr
	}
	if !l.trusted[host] {
		return host
	}
	// Earlier hops are client-supplied; only the proxy's own append counts.
	if xff := header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(xff[len(xff)-1], ",")
		if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
			return last
		}
	}
	return host
}
