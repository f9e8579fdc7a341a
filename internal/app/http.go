package app

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ykvlv/coach-bot/internal/scheduler"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type jobRunner interface {
	RunNow(ctx context.Context, name string) ([]scheduler.Outcome, error)
}

type jobResult struct {
	Job    string `json:"job"`
	Users  int    `json:"users"`
	Failed int    `json:"failed"`
}

// newHTTPHandler serves health checks and, when adminToken is set, manual job runs.
func newHTTPHandler(db pinger, jobs jobRunner, adminToken string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(req.Context()); err != nil {
			log.Warn("readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	if adminToken == "" {
		return r
	}

	r.With(bearerAuth(adminToken)).Post("/jobs/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		log.Info("manual job run", zap.String("job", name))

		outcomes, err := jobs.RunNow(req.Context(), name)
		if errors.Is(err, scheduler.ErrUnknownJob) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("manual job run failed", zap.String("job", name), zap.Error(err))
			http.Error(w, "job failed", http.StatusInternalServerError)
			return
		}

		res := jobResult{Job: name, Users: len(outcomes)}
		for _, o := range outcomes {
			if !o.OK() {
				res.Failed++
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	})
	return r
}

func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
