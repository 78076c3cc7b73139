package registerForEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elevate/internal/http-server/handlers/event/registerForEvent/mocks"
	"elevate/internal/lib/logger/handlers/slogdiscard"
	"elevate/internal/metrics"
	"elevate/internal/models"
	"elevate/internal/storage"
)

func attendee(name, email string) interface{} {
	return mock.MatchedBy(func(a models.Attendee) bool {
		return a.Name == name && a.Email == email && time.Since(a.RegisteredAt) < time.Minute
	})
}

func TestRegisterForEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.AttendeeRegistrar)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"name": "Ada Lovelace", "email": "ada@example.com"}`,
			mockSetup: func(m *mocks.AttendeeRegistrar) {
				m.On("RegisterAttendee", mock.Anything, "evt1", attendee("Ada Lovelace", "ada@example.com")).
					Return(&models.Registration{EventTitle: "Go Workshop", AttendeeCount: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Successfully registered for the event!","data":{"eventTitle":"Go Workshop","attendeeCount":1}}`,
		},
		{
			name:        "Name is trimmed and email normalized",
			requestBody: `{"name": "  Ada  ", "email": "  ADA@Example.COM "}`,
			mockSetup: func(m *mocks.AttendeeRegistrar) {
				m.On("RegisterAttendee", mock.Anything, "evt1", attendee("Ada", "ada@example.com")).
					Return(&models.Registration{EventTitle: "Go Workshop", AttendeeCount: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Successfully registered for the event!","data":{"eventTitle":"Go Workshop","attendeeCount":2}}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.AttendeeRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"failed to decode request"}`,
		},
		{
			name:           "Missing fields",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.AttendeeRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"success":false,"message":"Validation failed","errors":[
				{"field":"name","msg":"field name is required"},
				{"field":"email","msg":"field email is required"}]}`,
		},
		{
			name:           "Name too short after trimming",
			requestBody:    `{"name": " A ", "email": "ada@example.com"}`,
			mockSetup:      func(m *mocks.AttendeeRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"message":"Validation failed"`)
				assert.Contains(t, body, `"field":"name"`)
			},
		},
		{
			name:           "Invalid email",
			requestBody:    `{"name": "Ada", "email": "not-an-email"}`,
			mockSetup:      func(m *mocks.AttendeeRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"field":"email"`)
				assert.Contains(t, body, "must be a valid email address")
			},
		},
		{
			name:        "Event not found",
			requestBody: `{"name": "Ada", "email": "ada@example.com"}`,
			mockSetup: func(m *mocks.AttendeeRegistrar) {
				m.On("RegisterAttendee", mock.Anything, "evt1", mock.Anything).
					Return(nil, fmt.Errorf("storage.memory.RegisterAttendee: %w", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"message":"Event not found"}`,
		},
		{
			name:        "Registration closed",
			requestBody: `{"name": "Ada", "email": "ada@example.com"}`,
			mockSetup: func(m *mocks.AttendeeRegistrar) {
				m.On("RegisterAttendee", mock.Anything, "evt1", mock.Anything).
					Return(nil, storage.ErrRegistrationClosed)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Registration is closed for this event"}`,
		},
		{
			name:        "Already registered",
			requestBody: `{"name": "Ada", "email": "ada@example.com"}`,
			mockSetup: func(m *mocks.AttendeeRegistrar) {
				m.On("RegisterAttendee", mock.Anything, "evt1", mock.Anything).
					Return(nil, storage.ErrAlreadyRegistered)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"success":false,"message":"You are already registered for this event"}`,
		},
		{
			name:        "Event full",
			requestBody: `{"name": "Ada", "email": "ada@example.com"}`,
			mockSetup: func(m *mocks.AttendeeRegistrar) {
				m.On("RegisterAttendee", mock.Anything, "evt1", mock.Anything).
					Return(nil, storage.ErrEventFull)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Event is full. Registration closed."}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"name": "Ada", "email": "ada@example.com"}`,
			mockSetup: func(m *mocks.AttendeeRegistrar) {
				m.On("RegisterAttendee", mock.Anything, "evt1", mock.Anything).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Registration failed. Please try again later."}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			registrar := mocks.NewAttendeeRegistrar(t)
			tc.mockSetup(registrar)

			router := chi.NewRouter()
			router.Post("/api/events/{id}/register", New(logger, registrar, nil))

			req, err := http.NewRequest(http.MethodPost, "/api/events/evt1/register", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestRegisterForEventCountsOutcomes(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	registrar := mocks.NewAttendeeRegistrar(t)
	registrar.On("RegisterAttendee", mock.Anything, "evt1", mock.Anything).
		Return(&models.Registration{EventTitle: "Talk", AttendeeCount: 1}, nil).Once()
	registrar.On("RegisterAttendee", mock.Anything, "evt1", mock.Anything).
		Return(nil, storage.ErrEventFull).Once()

	router := chi.NewRouter()
	router.Post("/api/events/{id}/register", New(slogdiscard.NewDiscardLogger(), registrar, m))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/events/evt1/register",
			bytes.NewBufferString(`{"name": "Ada", "email": "ada@example.com"}`))
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.OutcomeRegistered)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.OutcomeFull)))
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, &models.Registration{EventTitle: "Hackathon", AttendeeCount: 7})

	assert.Equal(t, http.StatusOK, rr.Code)

	var actual Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actual))

	assert.True(t, actual.Success)
	assert.Equal(t, MsgRegistered, actual.Message)
	require.NotNil(t, actual.Data)
	assert.Equal(t, "Hackathon", actual.Data.EventTitle)
	assert.Equal(t, 7, actual.Data.AttendeeCount)
}
