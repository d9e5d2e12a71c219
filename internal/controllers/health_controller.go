package controllers

import (
	"net/http"

	"github.com/o2scale/goodboyholidayhomesverce/internal/store"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type HealthController struct {
	store *store.Store
}

func NewHealthController(s *store.Store) *HealthController {
	return &HealthController{store: s}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.store.View(r.Context(), func(*store.Data) error { return nil }); err != nil {
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Data store unavailable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
