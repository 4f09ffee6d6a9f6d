package get_day_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	getDayCalendar "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_calendar"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

const (
	msgInvalidPlaceID   = "invalid place id"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange     = "endDate must not be before startDate"
	msgRangeTooLarge    = "date range too large"
	msgInvalidBasePrice = "invalid basePrice"
)

type Handler struct {
	useCase GetDayCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetDayCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/day-calendar?startDate=&endDate=&basePrice=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["placeId"], 10, 64)
	if err != nil || placeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	startDate, err := types.ParseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := types.ParseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Цена по умолчанию для дней вне сезонных периодов
	var basePrice float64
	if raw := r.URL.Query().Get("basePrice"); raw != "" {
		basePrice, err = strconv.ParseFloat(raw, 64)
		if err != nil || basePrice < 0 {
			handlers.RespondBadRequest(w, msgInvalidBasePrice)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getDayCalendar.Request{
		PlaceID:   placeID,
		StartDate: startDate,
		EndDate:   endDate,
		BasePrice: basePrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayCalendar.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getDayCalendar.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getDayCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /places/{id}/day-calendar - Failed: place_id=%d, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
