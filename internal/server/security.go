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

	"github.com/osse101/IdleMiner_Go/internal/clock"
	"github.com/osse101/IdleMiner_Go/internal/logger"
)

// AuthMiddleware rejects requests without the configured API key. Public
// paths are served without a key.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				writeMiddlewareError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
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

// RequestSizeLimitMiddleware caps request bodies at maxBytes.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// DetectorConfig tunes the SuspiciousActivityDetector. Zero fields take the
// package defaults.
type DetectorConfig struct {
	Window          time.Duration
	MaxRequests     int
	FailedAuthAlert int
	Clock           clock.Clock
}

// SuspiciousActivityDetector counts requests and failed logins per client IP
// in fixed windows.
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	cfg              DetectorConfig
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
}

// NewSuspiciousActivityDetector creates a detector.
func NewSuspiciousActivityDetector(cfg DetectorConfig) *SuspiciousActivityDetector {
	if cfg.Window <= 0 {
		cfg.Window = DefaultRateWindow
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = DefaultMaxRequests
	}
	if cfg.FailedAuthAlert <= 0 {
		cfg.FailedAuthAlert = DefaultFailedAuthAlert
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.NewRealClock()
	}
	return &SuspiciousActivityDetector{
		cfg:              cfg,
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		windowStart:      cfg.Clock.Now(),
	}
}

// RecordFailedAuth counts a failed authentication and alerts once the
// threshold is reached.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.failedAuthByIP[ip]++

	if n := s.failedAuthByIP[ip]; n >= s.cfg.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// FailedAuthCount reports failures recorded for ip in the current window.
func (s *SuspiciousActivityDetector) FailedAuthCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollWindow()
	return s.failedAuthByIP[ip]
}

// RecordRequest counts a request and returns false once ip is over the limit.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.requestCountByIP[ip]++

	n := s.requestCountByIP[ip]
	if n <= s.cfg.MaxRequests {
		return true
	}
	if (n-s.cfg.MaxRequests)%highRateLogInterval == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n, "window", s.cfg.Window)
	}
	return false
}

// rollWindow clears counters once the window has elapsed. Caller holds mu.
func (s *SuspiciousActivityDetector) rollWindow() {
	now := s.cfg.Clock.Now()
	if now.Sub(s.windowStart) < s.cfg.Window {
		return
	}
	clear(s.requestCountByIP)
	clear(s.failedAuthByIP)
	s.windowStart = now
}

// RateLimitMiddleware rejects clients that exceed the detector's request limit.
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				writeMiddlewareError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then only its rightmost hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
		return last
	}
	return remoteIP
}

// SecurityHeadersMiddleware sets defensive response headers for a JSON API.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerNoReferrer)
			next.ServeHTTP(w, r)
		})
	}
}

type middlewareError struct {
	Error string `json:"error"`
}

func writeMiddlewareError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(middlewareError{Error: message})
}
