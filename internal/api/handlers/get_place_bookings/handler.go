package get_place_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	bookingsService "github.com/damianGG/EnjoyHubAI-sub001/internal/service/bookings"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/bookings/models"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/ptr"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

const (
	msgInvalidPlaceID = "invalid place id"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgInvalidFilter  = "invalid status filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/bookings?date=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["placeId"], 10, 64)
	if err != nil || placeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	req := &models.GetPlaceBookingsRequest{PlaceID: placeID}

	query := r.URL.Query()
	if raw := query.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}
	if raw := query.Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}
	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetPlaceBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /places/{id}/bookings - Failed: place_id=%d, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
