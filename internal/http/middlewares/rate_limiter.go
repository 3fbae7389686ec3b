package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "todolist.com/todolist/internal/errors"
)

var ErrRateLimited = &apperrors.Exception{
	Message:    "rate limit exceeded",
	StatusCode: http.StatusTooManyRequests,
}

// RateLimiter allows limit requests per client IP in each fixed window.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	windows := newFixedWindows(limit, window)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !windows.allow(c.RealIP(), time.Now()) {
				return ErrRateLimited
			}
			return next(c)
		}
	}
}

type clientWindow struct {
	opened time.Time
	used   int
}

// fixedWindows counts requests per client. Windows of clients that went
// quiet are dropped at most once per window length.
type fixedWindows struct {
	mu         sync.Mutex
	limit      int
	length     time.Duration
	lastPruned time.Time
	clients    map[string]*clientWindow
}

func newFixedWindows(limit int, length time.Duration) *fixedWindows {
	return &fixedWindows{
		limit:   limit,
		length:  length,
		clients: make(map[string]*clientWindow),
	}
}

func (w *fixedWindows) allow(ip string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	cw, ok := w.clients[ip]
	if !ok || w.expired(cw, now) {
		w.prune(now)
		cw = &clientWindow{opened: now}
		w.clients[ip] = cw
	}

	if cw.used >= w.limit {
		return false
	}
	cw.used++
	return true
}

func (w *fixedWindows) expired(cw *clientWindow, now time.Time) bool {
	return now.Sub(cw.opened) > w.length
}

func (w *fixedWindows) prune(now time.Time) {
	if now.Sub(w.lastPruned) < w.length {
		return
	}
	for ip, cw := range w.clients {
		if w.expired(cw, now) {
			delete(w.clients, ip)
		}
	}
	w.lastPruned = now
}
