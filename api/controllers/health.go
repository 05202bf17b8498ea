package controllers

import (
	"net/http"

	"github.com/merchly/quoter-backend/api/responses"
	"github.com/merchly/quoter-backend/pkg/config"
)

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{"status": "ok"}
		if cfg != nil {
			payload["env"] = cfg.App.Env
		}
		responses.WriteSuccess(w, payload)
	}
}
