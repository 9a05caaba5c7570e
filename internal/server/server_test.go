package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"libbot/internal/shared"
)

func TestBasicRouter(t *testing.T) {
	t.Run("routes by method", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
			t.Errorf("unexpected response %d %q", rec.Code, rec.Body.String())
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405 for wrong method, got %d", rec.Code)
		}
	})

	t.Run("applies middleware in order", func(t *testing.T) {
		router := NewBasicRouter()

		var order []string
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "first")
				next.ServeHTTP(w, r)
			})
		})
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "second")
				next.ServeHTTP(w, r)
			})
		})

		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "handler" {
			t.Errorf("unexpected middleware order %v", order)
		}
	})
}

func TestMetricsServer(t *testing.T) {
	metrics := shared.NewMetrics()
	metrics.IncCommand("search")

	srv := NewMetricsServer(shared.ServerConfig{Host: "127.0.0.1", Port: 0}, metrics, nil)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "ok") {
			t.Errorf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("metrics exposition", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "libbot_commands_total") {
			t.Errorf("expected command counter in exposition, got %q", rec.Body.String())
		}
	})
}
