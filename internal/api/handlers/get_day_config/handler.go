package get_day_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
)

const msgInvalidPlaceID = "invalid place id"

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

// Handle GET /api/v1/places/{placeId}/day-config
// Площадка без сохранённой конфигурации получает значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["placeId"], 10, 64)
	if err != nil || placeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	result, err := h.service.Get(r.Context(), placeID)
	if err != nil {
		h.logger.Error("GET /places/{id}/day-config - Failed: place_id=%d, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
