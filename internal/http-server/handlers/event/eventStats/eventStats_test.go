package eventStats

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"elevate/internal/http-server/handlers/event/eventStats/mocks"
	"elevate/internal/lib/logger/handlers/slogdiscard"
	"elevate/internal/models"
)

func TestEventStatsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventStatsProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventStatsProvider) {
				m.On("EventStats", mock.Anything, mock.Anything).Return(&models.EventStats{
					TotalEvents:    3,
					UpcomingEvents: 2,
					PastEvents:     1,
					CategoryStats: []models.GroupCount{
						{Key: "workshop", Count: 2},
						{Key: "seminar", Count: 1},
					},
					TotalRegistrations: 17,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"data":{"totalEvents":3,"upcomingEvents":2,"pastEvents":1,
				"categoryStats":[{"_id":"workshop","count":2},{"_id":"seminar","count":1}],"totalRegistrations":17}}`,
		},
		{
			name: "No events",
			mockSetup: func(m *mocks.EventStatsProvider) {
				m.On("EventStats", mock.Anything, mock.Anything).Return(&models.EventStats{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"data":{"totalEvents":0,"upcomingEvents":0,"pastEvents":0,
				"categoryStats":[],"totalRegistrations":0}}`,
		},
		{
			name: "Storage failure",
			mockSetup: func(m *mocks.EventStatsProvider) {
				m.On("EventStats", mock.Anything, mock.Anything).Return(nil, errors.New("aggregate failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Failed to fetch events statistics"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewEventStatsProvider(t)
			tc.mockSetup(provider)

			rr := httptest.NewRecorder()
			New(logger, provider).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events/stats/overview", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
