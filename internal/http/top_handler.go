package http

import (
	"net/http"

	"bookclub/internal/usecase"
)

type TopHandler struct {
	svc usecase.RatingsService
}

func NewTopHandler(svc usecase.RatingsService) *TopHandler {
	return &TopHandler{svc: svc}
}

// Top handles GET /top. The leaderboard is recomputed from the ledger on
// every call and may be empty.
func (h *TopHandler) Top(w http.ResponseWriter, r *http.Request) {
	top, err := h.svc.TopBooks(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, top)
}
