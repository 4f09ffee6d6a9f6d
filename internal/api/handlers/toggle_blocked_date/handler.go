package toggle_blocked_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	dayconfigService "github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig/models"
)

const (
	msgInvalidPlaceID     = "invalid place id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
)

// ToggleRequest HTTP request model
type ToggleRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

type Handler struct {
	service DayConfigService
	logger  Logger
}

func NewHandler(service DayConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/places/{placeId}/day-config/blocked-dates
// Заблокированная дата освобождается, свободная блокируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["placeId"], 10, 64)
	if err != nil || placeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /places/{id}/day-config/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ToggleBlockedDate(r.Context(), &models.ToggleBlockedDateRequest{
		PlaceID: placeID,
		Date:    req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, dayconfigService.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, dayconfigService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /places/{id}/day-config/blocked-dates - Failed: place_id=%d, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /places/{id}/day-config/blocked-dates - Toggled: place_id=%d, date=%s", placeID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
