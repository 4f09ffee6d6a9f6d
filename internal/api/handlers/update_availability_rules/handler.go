package update_availability_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	availabilityService "github.com/damianGG/EnjoyHubAI-sub001/internal/service/availability"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/availability/models"
)

const (
	msgInvalidOfferID     = "invalid offer id"
	msgInvalidRequestBody = "invalid request body"
	msgOfferNotFound      = "offer not found"
)

// UpdateRulesRequest HTTP request model: полный список правил на замену
type UpdateRulesRequest struct {
	Windows []models.WindowInput `json:"windows"`
}

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

// Handle PUT /api/v1/offers/{offerId}/availability
// Правила заменяются целиком: присланный список становится единственным
// набором правил оффера
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	var req UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /offers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), &models.ReplaceRequest{
		OfferID: offerID,
		Windows: req.Windows,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrOfferNotFound):
			h.logger.Warn("PUT /offers/{id}/availability - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, availabilityService.ErrInvalidWeekday),
			errors.Is(err, availabilityService.ErrInvalidTimeFormat),
			errors.Is(err, availabilityService.ErrInvalidTimeRange),
			errors.Is(err, availabilityService.ErrInvalidSlotLength),
			errors.Is(err, availabilityService.ErrInvalidMaxBookings),
			errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /offers/{id}/availability - Validation failed: offer_id=%d, error=%v", offerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /offers/{id}/availability - Failed: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /offers/{id}/availability - Rules replaced: offer_id=%d, count=%d",
		offerID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
