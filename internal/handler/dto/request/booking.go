package request

import (
	"timebook/internal/usecase/commands"
)

// CreateBookingRequest carries raw strings on purpose: shape validation
// (id format, date format, minimum amount) is a core concern and happens in
// the command layer, in one combined pass.
type CreateBookingRequest struct {
	EventID string `json:"eventId" binding:"required"`
	Day     string `json:"day" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.BookRequest {
	return commands.BookRequest{
		EventID: r.EventID,
		Day:     r.Day,
		Amount:  r.Amount,
	}
}
