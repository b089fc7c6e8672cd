package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/InvestSim_Go/internal/logger"
)

// AuthMiddleware requires the API key on every non-public path. Failed
// checks are counted against the client address.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			monitor.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "")
			writeError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientCounts holds one client's counters for the current window
type clientCounts struct {
	requests          int
	failedAuth        int
	rejectedPurchases int
}

// ClientMonitor counts requests, failed API key checks and rejected purchase
// submissions per client address. All counters reset together when the
// window elapses.
type ClientMonitor struct {
	mu          sync.Mutex
	now         func() time.Time
	windowStart time.Time
	clients     map[string]*clientCounts
}

func NewClientMonitor() *ClientMonitor {
	m := &ClientMonitor{now: time.Now, clients: make(map[string]*clientCounts)}
	m.windowStart = m.now()
	return m
}

// counts returns the client's counters, starting a new window first if the
// current one has elapsed. Caller holds mu.
func (m *ClientMonitor) counts(ip string) *clientCounts {
	if now := m.now(); now.Sub(m.windowStart) > RateLimitWindow {
		clear(m.clients)
		m.windowStart = now
	}
	c, ok := m.clients[ip]
	if !ok {
		c = &clientCounts{}
		m.clients[ip] = c
	}
	return c
}

// Allow counts a request and reports whether the client is within its budget
func (m *ClientMonitor) Allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.counts(ip)
	c.requests++
	if c.requests <= MaxRequestsPerWindow {
		return true
	}
	if c.requests%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", c.requests)
	}
	return false
}

// AllowPurchase reports whether the client may submit another purchase.
// Clients whose submissions keep failing are held off until the window resets.
func (m *ClientMonitor) AllowPurchase(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts(ip).rejectedPurchases < MaxRejectedPurchasesPerWindow
}

func (m *ClientMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.counts(ip)
	c.failedAuth++
	if c.failedAuth >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", c.failedAuth)
	}
}

func (m *ClientMonitor) RecordRejectedPurchase(ip string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.counts(ip)
	c.rejectedPurchases++
	if c.rejectedPurchases == MaxRejectedPurchasesPerWindow {
		slog.Warn(SecurityAlertPurchaseRejections, "ip", ip, "count", c.rejectedPurchases, "last_status", status)
	}
}

// isPurchaseSubmission matches POST /api/v1/accounts/{id}/purchases
func isPurchaseSubmission(r *http.Request) bool {
	return r.Method == http.MethodPost && strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), PurchasesPathSuffix)
}

// purchaseRejected reports whether a purchase answer counts against the client.
// Auth and throttling answers are tracked elsewhere, server faults are ours.
func purchaseRejected(status int) bool {
	return status >= 400 && status < 500 &&
		status != http.StatusUnauthorized && status != http.StatusTooManyRequests
}

// RateLimitMiddleware enforces the per-client request budget and throttles
// clients whose purchase submissions keep being rejected.
func RateLimitMiddleware(trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustedProxies)
			if !monitor.Allow(ip) {
				writeError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			if !isPurchaseSubmission(r) {
				next.ServeHTTP(w, r)
				return
			}

			if !monitor.AllowPurchase(ip) {
				logger.FromContext(r.Context()).Warn(LogMsgPurchaseThrottled, "ip", ip)
				writeError(w, http.StatusTooManyRequests, ErrMsgPurchasesThrottled)
				return
			}
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)
			if purchaseRejected(rw.statusCode) {
				monitor.RecordRejectedPurchase(ip, rw.statusCode)
			}
		})
	}
}

// writeError matches the JSON error body the API handlers produce
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// clientIP is the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy.
func clientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets the browser hardening headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
