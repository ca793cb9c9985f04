//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"timebook/internal/domain/event"
	"timebook/internal/handler/api"
	resdto "timebook/internal/handler/dto/response"
	"timebook/internal/pkg/errs"
	"timebook/internal/usecase/commands"
	"timebook/tests/common/builder"
	"timebook/tests/common/httptest"
	commandsmock "timebook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"eventId": uuid.New().String(),
		"day":     "2024-03-06",
		"amount":  "2",
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("books and returns the updated event", func() {
		view := builder.NewEventBuilder().WithDetail("2024-03-06", 2).BuildView()
		body := s.validBody()

		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.userID, commands.BookRequest{
				EventID: body["eventId"].(string),
				Day:     "2024-03-06",
				Amount:  "2",
			}).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "token")

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Booking completed.", resp.Message)
		s.Require().NotNil(resp.Event)
		s.Equal(view.ID, resp.Event.ID)
		s.Equal(2.0, resp.Event.DurationBooked)
		s.Len(resp.Event.BookingDetails, 1)
	})

	s.Run("rejects request without token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects body with missing fields", func() {
		body := s.validBody()
		delete(body, "amount")

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "token")
		httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "VALIDATION")
	})

	s.Run("maps validation failures from the command layer", func() {
		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrValidation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Required date format: YYYY-MM-DD")
	})

	s.Run("maps missing event to 404", func() {
		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrEventNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "token")
		httptest.AssertErrorKind(s.T(), w, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("capacity overflow returns the remaining hours", func() {
		capErr := &event.CapacityError{Requested: 0.25, Available: 0}
		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(capErr, commands.ErrCapacityExceeded))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "unallowed amount: 0.25h, available booking hours: 0h")

		var resp struct {
			Detail struct {
				AvailableHours float64 `json:"availableHours"`
			} `json:"detail"`
		}
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(0.0, resp.Detail.AvailableHours)
	})

	s.Run("maps exhausted retries to 409", func() {
		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrConflictRetryExhausted)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "token")
		httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "CONFLICT")
	})

	s.Run("maps unknown failures to 500", func() {
		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.validBody(), "token")
		httptest.AssertErrorKind(s.T(), w, http.StatusInternalServerError, "INTERNAL")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("deletes and returns the updated event", func() {
		view := builder.NewEventBuilder().BuildView()
		detailID := uuid.New()

		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.userID, detailID.String()).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+detailID.String(), nil, "token")

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Booking detail deleted!", resp.Message)
		s.Require().NotNil(resp.Event)
		s.Equal(view.ID, resp.Event.ID)
	})

	s.Run("rejects request without token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+uuid.New().String(), nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("maps malformed id to validation error", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.userID, "not-an-id").
			Return(nil, commands.ErrValidation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-an-id", nil, "token")
		httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "VALIDATION")
	})

	s.Run("maps missing booking detail to 404", func() {
		detailID := uuid.New()
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.userID, detailID.String()).
			Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+detailID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking detail not found")
	})
}
