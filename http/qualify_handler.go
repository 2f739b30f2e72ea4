package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"loan-qualifier/domain"
	"loan-qualifier/service"
)

type QualifyHandler struct {
	service       *service.QualifierService
	rateSheetPath string
}

func NewQualifyHandler(service *service.QualifierService, rateSheetPath string) *QualifyHandler {
	return &QualifyHandler{service: service, rateSheetPath: rateSheetPath}
}

// Qualify runs the filtering pipeline over the configured rate sheet for
// the applicant profile in the request body.
func (h *QualifyHandler) Qualify(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var profile domain.ApplicantProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.QualifyFromSheet(r.Context(), h.rateSheetPath, profile)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrZeroIncome) || errors.Is(err, service.ErrZeroHomeValue) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
