package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	getDaySlots "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_slots"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

const (
	msgInvalidOfferID = "invalid offer id"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgOfferNotFound  = "offer not found"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/{offerId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{
		OfferID: offerID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{id}/slots - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /offers/{id}/slots - Failed: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
