package handlers

import (
	"errors"
	"log"
	"net/http"

	"vizigoBack/internal/models"
	"vizigoBack/internal/services"
)

type BikeHandler struct {
	Service  *services.BikeService
	ErrorLog *log.Logger
}

// UpdateBike handles POST /update_bike/. Despite the name it always creates a new listing.
func (h *BikeHandler) UpdateBike(w http.ResponseWriter, r *http.Request) {
	var req models.BikeUpdateRequest
	if issues := decodeAndValidate(r, &req); issues != nil {
		writeValidationError(w, issues)
		return
	}

	id, err := h.Service.CreateBike(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			writeValidationError(w, []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "date_parsing"}})
			return
		}
		ServerError(w, h.ErrorLog, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CreateBikeResponse{
		Message: "Bike details updated successfully",
		BikeID:  id,
	})
}

// GetBikes handles GET /bikes. Store and decode failures are reported with their message.
func (h *BikeHandler) GetBikes(w http.ResponseWriter, r *http.Request) {
	bikes, err := h.Service.GetBikes(r.Context())
	if err != nil {
		if h.ErrorLog != nil {
			h.ErrorLog.Printf("list bikes: %v", err)
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, bikes)
}
