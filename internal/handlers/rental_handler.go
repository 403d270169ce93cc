package handlers

import (
	"errors"
	"log"
	"net/http"

	"vizigoBack/internal/models"
	"vizigoBack/internal/services"
)

type RentalHandler struct {
	Service  *services.RentalService
	ErrorLog *log.Logger
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req models.RentalRequestInput
	if issues := decodeAndValidate(r, &req); issues != nil {
		writeValidationError(w, issues)
		return
	}

	id, err := h.Service.CreateRental(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			writeValidationError(w, []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "date_parsing"}})
			return
		}
		ServerError(w, h.ErrorLog, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CreateRentalResponse{
		Message:  "Rental request created successfully",
		RentalID: id,
	})
}
