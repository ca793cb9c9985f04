package api

import (
	"errors"
	"net/http"

	"timebook/internal/domain/event"
	reqdto "timebook/internal/handler/dto/request"
	resdto "timebook/internal/handler/dto/response"
	"timebook/internal/handler/httperr"
	"timebook/internal/handler/middleware"
	"timebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Book time from an event onto a day
// @Description Allocate part of an event's duration as booked time on a calendar date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.KindInternal,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, httperr.KindValidation,
			bindErr, "Invalid date format or amount. Required date format: YYYY-MM-DD. Amount must be at least 0.25h", nil)
		return
	}

	view, err := h.bookingCommands.Book(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewBookingResult("Booking completed.", view))
}

// @Summary Delete a booking
// @Description Remove one booking detail and release its hours
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking detail ID"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.KindInternal,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.bookingCommands.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewBookingResult("Booking detail deleted!", view))
}

func (h *BookingHandler) abortWithCommandError(c *gin.Context, err error) {
	var capErr *event.CapacityError

	switch {
	case errors.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, httperr.KindValidation,
			err, "Invalid date format or amount. Required date format: YYYY-MM-DD. Amount must be at least 0.25h", nil)
	case errors.Is(err, commands.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.KindNotFound,
			err, "Event not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.KindNotFound,
			err, "Booking detail not found", nil)
	case errors.As(err, &capErr):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.KindCapacity,
			err, capErr.Error(), gin.H{"availableHours": capErr.Available})
	case errors.Is(err, commands.ErrConflictRetryExhausted):
		httperr.AbortWithError(c, http.StatusConflict, httperr.KindConflict,
			err, "Event is being updated concurrently, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.KindInternal,
			err, "Internal server error", nil)
	}
}
