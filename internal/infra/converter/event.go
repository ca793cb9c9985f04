package converter

import (
	"encoding/json"
	"time"

	"timebook/internal/domain/booking"
	"timebook/internal/domain/event"
	"timebook/internal/pkg/errs"
	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingDetailDoc is the persisted shape of one allocation inside the
// events.booking_details array. Field names follow the stored documents.
type BookingDetailDoc struct {
	ID     uuid.UUID `json:"id"`
	ToDate string    `json:"toDate"`
	Amount float64   `json:"amount"`
}

type WorkLogDoc struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

// EventRow is the raw scan target shared by the read store and the write
// repository; both map it onward with the functions below.
type EventRow struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	OccurredAtMS   int64
	Duration       float64
	DurationBooked float64
	FullyBooked    bool
	BookingDetails []byte
	WorkLogs       []byte
	DayID          *uuid.UUID
	UpdatedAt      time.Time
}

func DetailToDoc(d event.BookingDetail) BookingDetailDoc {
	return BookingDetailDoc{
		ID:     d.ID,
		ToDate: d.ToDate.String(),
		Amount: d.Amount.Hours(),
	}
}

func MarshalDetail(d event.BookingDetail) ([]byte, error) {
	raw, err := json.Marshal(DetailToDoc(d))
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking detail")
	}
	return raw, nil
}

func EventRowToView(row *EventRow) (*queries.EventView, error) {
	detailDocs, logDocs, err := decodeDocs(row)
	if err != nil {
		return nil, err
	}

	details := make([]queries.BookingDetailView, len(detailDocs))
	for i, d := range detailDocs {
		details[i] = queries.BookingDetailView{
			ID:     d.ID,
			ToDate: d.ToDate,
			Amount: d.Amount,
		}
	}

	logs := make([]queries.WorkLogView, len(logDocs))
	for i, l := range logDocs {
		logs[i] = queries.WorkLogView{Title: l.Title, Duration: l.Duration}
	}

	return &queries.EventView{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Title:          row.Title,
		OccurredAtMS:   row.OccurredAtMS,
		Duration:       row.Duration,
		DurationBooked: row.DurationBooked,
		FullyBooked:    row.FullyBooked,
		BookingDetails: details,
		WorkLogs:       logs,
		DayID:          row.DayID,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func EventRowToDomain(row *EventRow) (*event.Event, error) {
	detailDocs, logDocs, err := decodeDocs(row)
	if err != nil {
		return nil, err
	}

	details := make([]event.BookingDetail, len(detailDocs))
	for i, d := range detailDocs {
		toDate, err := booking.NewDate(d.ToDate)
		if err != nil {
			return nil, errs.Wrap(err, "stored booking detail has invalid date")
		}
		amount, err := booking.NewAmount(d.Amount)
		if err != nil {
			return nil, errs.Wrap(err, "stored booking detail has invalid amount")
		}
		details[i] = event.BookingDetail{ID: d.ID, ToDate: toDate, Amount: amount}
	}

	logs := make([]event.WorkLog, len(logDocs))
	for i, l := range logDocs {
		logs[i] = event.WorkLog{Title: l.Title, Duration: l.Duration}
	}

	return event.ReconstructEvent(
		row.ID,
		row.OwnerID,
		row.Title,
		row.OccurredAtMS,
		row.Duration,
		row.DurationBooked,
		row.FullyBooked,
		details,
		logs,
		row.DayID,
		row.UpdatedAt,
	), nil
}

func decodeDocs(row *EventRow) ([]BookingDetailDoc, []WorkLogDoc, error) {
	var detailDocs []BookingDetailDoc
	if len(row.BookingDetails) > 0 {
		if err := json.Unmarshal(row.BookingDetails, &detailDocs); err != nil {
			return nil, nil, errs.Wrap(err, "failed to decode booking details")
		}
	}

	var logDocs []WorkLogDoc
	if len(row.WorkLogs) > 0 {
		if err := json.Unmarshal(row.WorkLogs, &logDocs); err != nil {
			return nil, nil, errs.Wrap(err, "failed to decode work logs")
		}
	}
	return detailDocs, logDocs, nil
}
