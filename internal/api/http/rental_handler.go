package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalWithCar{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateRentalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	rental, err := h.rentals.CreateRental(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// updateRentalResponse is the PUT response shape: only the fields the update
// may have changed.
type updateRentalResponse struct {
	ID        int32               `json:"id"`
	Status    domain.RentalStatus `json:"status"`
	EndDate   string              `json:"end_date"`
	TotalCost domain.Money        `json:"total_cost"`
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in service.UpdateRentalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	rental, err := h.rentals.UpdateRental(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updateRentalResponse{
		ID:        rental.ID,
		Status:    rental.Status,
		EndDate:   rental.EndDate,
		TotalCost: rental.TotalCost,
	})
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.rentals.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "rental deleted"})
}
