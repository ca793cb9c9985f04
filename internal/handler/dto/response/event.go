package response

import (
	"time"

	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingDetailResponse struct {
	ID     uuid.UUID `json:"id"`
	ToDate string    `json:"toDate"`
	Amount float64   `json:"amount"`
}

type WorkLogResponse struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

type EventResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	OccurredAtMS   int64                   `json:"date"`
	Duration       float64                 `json:"duration"`
	DurationBooked float64                 `json:"durationBooked"`
	FullyBooked    bool                    `json:"fullyBooked"`
	BookingDetails []BookingDetailResponse `json:"bookingDetails"`
	WorkLogs       []WorkLogResponse       `json:"logs"`
	DayID          *uuid.UUID              `json:"day,omitempty"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// BookingResultResponse is the booking/deletion success envelope: a human
// message plus the updated event projection.
type BookingResultResponse struct {
	Message string         `json:"message"`
	Event   *EventResponse `json:"event"`
}

type DayResponse struct {
	ID        uuid.UUID   `json:"id"`
	Date      string      `json:"date"`
	Events    []uuid.UUID `json:"events"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func FromEventView(view *queries.EventView) *EventResponse {
	var resp EventResponse
	// Field-for-field projection; OwnerID is deliberately not exposed.
	_ = copier.Copy(&resp, view)
	return &resp
}

func NewBookingResult(message string, view *queries.EventView) *BookingResultResponse {
	return &BookingResultResponse{
		Message: message,
		Event:   FromEventView(view),
	}
}

func FromDayView(view *queries.DayView) *DayResponse {
	return &DayResponse{
		ID:        view.ID,
		Date:      view.Date,
		Events:    view.Events,
		UpdatedAt: view.UpdatedAt,
	}
}
