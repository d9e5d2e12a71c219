package controllers

import (
	"net/http"

	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/services"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type AvailabilityController struct {
	availability *services.AvailabilityService
}

func NewAvailabilityController(a *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{availability: a}
}

// ----------------------------------------------------------------
// GET /api/v1/availability?property_id=&start_date=&end_date=&policy=
// policy defaults to "search"; "submission" applies the stricter
// pre-submission filter where pending bookings also block.
// ----------------------------------------------------------------
func (c *AvailabilityController) CheckHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	propertyID := q.Get("property_id")
	if propertyID == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "property_id is required", nil)
		return
	}

	startStr, endStr := q.Get("start_date"), q.Get("end_date")
	if startStr == "" || endStr == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "start_date and end_date are required", nil)
		return
	}
	rng, err := parseQueryRange(startStr, endStr)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, err)
		return
	}

	policy := models.PolicySearch
	if p := q.Get("policy"); p != "" {
		parsed, ok := models.ParseAvailabilityPolicy(p)
		if !ok {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "policy must be search or submission", nil)
			return
		}
		policy = parsed
	}

	available, err := c.availability.IsAvailable(r.Context(), propertyID, rng, policy)
	if err != nil {
		respondServiceError(w, err, "Failed to check availability")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.AvailabilityResponse{
		PropertyID: propertyID,
		StartDate:  startStr,
		EndDate:    endStr,
		Policy:     string(policy),
		Available:  available,
	})
}
