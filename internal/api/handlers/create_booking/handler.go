package create_booking

import (
	"errors"
	"net/http"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	createBooking "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/create_booking"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid start time, expected HH:MM"
	msgOfferNotFound      = "offer not found"
	msgInvalidBookingDate = "booking date is in the past"
	msgInvalidPersons     = "persons count not accepted by offer"
	msgSlotNotAvailable   = "slot is not available"
	msgSlotFullyBooked    = "slot is fully booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Бронирование может быть анонимным; заголовок X-User-ID, если он есть,
// переключает источник записи на admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	source := domain.SourceWeb
	if r.Header.Get("X-User-ID") != "" {
		source = domain.SourceAdmin
	}

	useCaseReq, err := req.ToUseCaseRequest(source)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotFullyBooked):
			h.logger.Warn("POST /bookings - Slot fully booked: offer_id=%d, time=%s", req.OfferID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotFullyBooked)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: offer_id=%d, time=%s", req.OfferID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrOfferNotFound):
			h.logger.Warn("POST /bookings - Offer not found: offer_id=%d", req.OfferID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Booking date in the past: offer_id=%d, date=%s", req.OfferID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidPersons):
			h.logger.Warn("POST /bookings - Invalid persons: offer_id=%d, persons=%d", req.OfferID, req.Persons)
			handlers.RespondBadRequest(w, msgInvalidPersons)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: offer_id=%d, error=%v", req.OfferID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, offer_id=%d",
		result.ID, req.OfferID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
