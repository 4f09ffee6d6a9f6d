package get_next_slot

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// OfferRequest поиск ближайшего слота одного оффера
type OfferRequest struct {
	OfferID   int64
	DateStart time.Time
	DateEnd   time.Time
}

// PlaceRequest поиск ближайшего слота среди всех активных офферов площадки
type PlaceRequest struct {
	PlaceID   int64
	DateStart time.Time
	DateEnd   time.Time
}

// OfferResponse ближайший свободный слот оффера
type OfferResponse struct {
	Found     bool
	Date      time.Time
	StartTime types.TimeString
}

// PlaceResponse ближайший свободный слот площадки.
// PriceFrom — минимальная базовая цена среди офферов,
// свободных в найденный момент
type PlaceResponse struct {
	Found     bool
	Date      time.Time
	StartTime types.TimeString
	OfferID   int64
	PriceFrom float64
}

// candidate внутренний результат сканирования одного оффера
type candidate struct {
	offer     *domain.Offer
	date      time.Time
	startTime types.TimeString
}
