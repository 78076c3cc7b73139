package getEvent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elevate/internal/http-server/handlers/event/getEvent/mocks"
	"elevate/internal/lib/logger/handlers/slogdiscard"
	"elevate/internal/models"
	"elevate/internal/storage"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	past := time.Now().Add(-48 * time.Hour).UTC().Truncate(time.Second)

	event := &models.Event{
		ID:       "evt1",
		Title:    "Retro Meetup",
		Date:     past,
		Category: models.CategoryNetworking,
		IsActive: true,
		RegisteredAttendees: []models.Attendee{
			{Name: "Grace", Email: "grace@example.com", RegisteredAt: past.Add(-time.Hour)},
			{Name: "Linus", Email: "linus@example.com", RegisteredAt: past.Add(-30 * time.Minute)},
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("Event", mock.Anything, "evt1").Return(event, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp Response
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.True(t, resp.Success)
				require.NotNil(t, resp.Data)
				assert.Equal(t, "Retro Meetup", resp.Data.Title)
				assert.Equal(t, 2, resp.Data.AttendeeCount)
				assert.False(t, resp.Data.IsRegistrationOpen)
				require.Len(t, resp.Data.RegisteredAttendees, 2)
				assert.Equal(t, "Grace", resp.Data.RegisteredAttendees[0].Name)
				assert.NotContains(t, string(body), "grace@example.com")
				assert.NotContains(t, string(body), "linus@example.com")
			},
		},
		{
			name: "Not found",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("Event", mock.Anything, "evt1").
					Return(nil, fmt.Errorf("storage.mongo.Event: %w", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"success":false,"message":"Event not found"}`, string(body))
			},
		},
		{
			name: "Storage failure",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("Event", mock.Anything, "evt1").Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"success":false,"message":"Failed to fetch event"}`, string(body))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewEventProvider(t)
			tc.mockSetup(provider)

			router := chi.NewRouter()
			router.Get("/api/events/{id}", New(logger, provider))

			req, err := http.NewRequest(http.MethodGet, "/api/events/evt1", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())
		})
	}
}
