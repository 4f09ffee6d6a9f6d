package get_day_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	getDaySummary "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_summary"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

const (
	msgInvalidOfferID = "invalid offer id"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange   = "endDate must not be before startDate"
	msgRangeTooLarge  = "date range too large"
	msgOfferNotFound  = "offer not found"
)

type Handler struct {
	useCase GetDaySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/{offerId}/availability?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidOfferID)
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

	result, err := h.useCase.Execute(r.Context(), &getDaySummary.Request{
		OfferID:   offerID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySummary.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{id}/availability - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, getDaySummary.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getDaySummary.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getDaySummary.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /offers/{id}/availability - Failed: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
