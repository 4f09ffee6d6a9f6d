package update_day_config

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
)

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

// Handle PUT /api/v1/places/{placeId}/day-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["placeId"], 10, 64)
	if err != nil || placeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /places/{id}/day-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.PlaceID = placeID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, dayconfigService.ErrInvalidBookingMode),
			errors.Is(err, dayconfigService.ErrInvalidCapacity),
			errors.Is(err, dayconfigService.ErrInvalidStay),
			errors.Is(err, dayconfigService.ErrInvalidDate),
			errors.Is(err, dayconfigService.ErrInvalidSeasonalPeriod),
			errors.Is(err, dayconfigService.ErrInvalidInput):
			h.logger.Warn("PUT /places/{id}/day-config - Validation failed: place_id=%d, error=%v", placeID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /places/{id}/day-config - Failed: place_id=%d, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /places/{id}/day-config - Config updated: place_id=%d", placeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
