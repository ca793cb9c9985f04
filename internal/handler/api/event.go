package api

import (
	"errors"
	"net/http"

	resdto "timebook/internal/handler/dto/response"
	"timebook/internal/handler/httperr"
	"timebook/internal/handler/middleware"
	"timebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventQueries queries.EventQueries
	dayQueries   queries.DayQueries
}

func NewEventHandler(eventQueries queries.EventQueries, dayQueries queries.DayQueries) *EventHandler {
	return &EventHandler{
		eventQueries: eventQueries,
		dayQueries:   dayQueries,
	}
}

// @Summary Get event
// @Description Fetch an event with its booking ledger
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.KindInternal,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, httperr.KindValidation,
			err, "Invalid ID format!", nil)
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), userID, eventID)
	if err != nil {
		if errors.Is(err, queries.ErrEventNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, httperr.KindNotFound,
				err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.KindInternal,
			err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Get day
// @Description Fetch a calendar day with its cross-referenced events
// @Tags days
// @Produce json
// @Security BearerAuth
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /days/{date} [get]
func (h *EventHandler) GetDay(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.KindInternal,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.dayQueries.GetByDate(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		if errors.Is(err, queries.ErrDayInvalidDate) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, httperr.KindValidation,
				err, "Invalid date format. Required format: YYYY-MM-DD", nil)
			return
		}
		if errors.Is(err, queries.ErrDayNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, httperr.KindNotFound,
				err, "Day not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.KindInternal,
			err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayView(view))
}
