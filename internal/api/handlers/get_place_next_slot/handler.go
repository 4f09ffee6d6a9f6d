package get_place_next_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	getNextSlot "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_next_slot"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

const (
	msgInvalidPlaceID = "invalid place id"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange   = "dateEnd must not be before dateStart"
	msgRangeTooLarge  = "date range too large"
)

// NextSlotResponse HTTP response model
type NextSlotResponse struct {
	Found     bool    `json:"found"`
	Date      string  `json:"date,omitempty"`
	StartTime string  `json:"startTime,omitempty"`
	OfferID   int64   `json:"offerId,omitempty"`
	PriceFrom float64 `json:"priceFrom,omitempty"`
}

type Handler struct {
	useCase GetNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase GetNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/next-slot?dateStart=&dateEnd=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["placeId"], 10, 64)
	if err != nil || placeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	dateStart, err := types.ParseDate(r.URL.Query().Get("dateStart"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	dateEnd, err := types.ParseDate(r.URL.Query().Get("dateEnd"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.ExecuteForPlace(r.Context(), &getNextSlot.PlaceRequest{
		PlaceID:   placeID,
		DateStart: dateStart,
		DateEnd:   dateEnd,
	})
	if err != nil {
		switch {
		case errors.Is(err, getNextSlot.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getNextSlot.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getNextSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /places/{id}/next-slot - Failed: place_id=%d, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &NextSlotResponse{Found: result.Found}
	if result.Found {
		resp.Date = result.Date.Format(domain.DateFormat)
		resp.StartTime = result.StartTime.String()
		resp.OfferID = result.OfferID
		resp.PriceFrom = result.PriceFrom
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
