package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/o2scale/goodboyholidayhomesverce/internal/daterange"
	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/services"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type PropertiesController struct {
	propertyService *services.PropertyService
}

func NewPropertiesController(ps *services.PropertyService) *PropertiesController {
	return &PropertiesController{propertyService: ps}
}

// ----------------------------------------------------------------
// GET /api/v1/properties?location=&guests=&start_date=&end_date=
// ----------------------------------------------------------------
func (c *PropertiesController) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := services.SearchFilters{Location: q.Get("location")}
	if g := q.Get("guests"); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil || n < 1 {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "guests must be a positive integer", nil, err)
			return
		}
		filters.MinGuests = n
	}

	startStr, endStr := q.Get("start_date"), q.Get("end_date")
	if startStr != "" && endStr != "" {
		rng, err := parseQueryRange(startStr, endStr)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, err)
			return
		}
		filters.Stay = &rng
	}

	props, err := c.propertyService.Search(r.Context(), filters)
	if err != nil {
		respondServiceError(w, err, "Failed to list properties")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// ----------------------------------------------------------------
// GET /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertiesController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	prop, err := c.propertyService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prop)
}

// ----------------------------------------------------------------
// POST /api/v1/properties  (admin)
// ----------------------------------------------------------------
func (c *PropertiesController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	prop, err := c.propertyService.Create(ctx, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create property")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, prop)
}

// ----------------------------------------------------------------
// PUT /api/v1/properties/{id}  (admin, full replace, id immutable)
// ----------------------------------------------------------------
func (c *PropertiesController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	prop, err := c.propertyService.Update(ctx, id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prop)
}

func parseQueryRange(startStr, endStr string) (daterange.Range, error) {
	start, err := daterange.ParseDate(startStr)
	if err != nil {
		return daterange.Range{}, err
	}
	end, err := daterange.ParseDate(endStr)
	if err != nil {
		return daterange.Range{}, err
	}
	return daterange.New(start, end)
}
