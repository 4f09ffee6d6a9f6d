package get_availability_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	availabilityService "github.com/damianGG/EnjoyHubAI-sub001/internal/service/availability"
)

const (
	msgInvalidOfferID = "invalid offer id"
	msgOfferNotFound  = "offer not found"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/{offerId}/availability/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	result, err := h.service.GetByOffer(r.Context(), offerID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{id}/availability/rules - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		default:
			h.logger.Error("GET /offers/{id}/availability/rules - Failed: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
