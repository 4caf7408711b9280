package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/cantina-pos-backend/api/responses"
	"github.com/angelmondragon/cantina-pos-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
)

const readyCheckTimeout = 2 * time.Second

// Pinger is the health check surface shared by the database and Redis
// clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cantina-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every wired dependency answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cantina-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		checks := map[string]string{}
		failed := false
		for name, pinger := range map[string]Pinger{"database": db, "redis": redis} {
			if pinger == nil {
				checks[name] = "skipped"
				continue
			}
			if err := pinger.Ping(ctx); err != nil {
				checks[name] = "down"
				failed = true
				if logg != nil {
					logg.Error(r.Context(), "readiness check failed", err)
				}
				continue
			}
			checks[name] = "up"
		}

		if failed {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
