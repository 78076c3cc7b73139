package checkEmail

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elevate/internal/http-server/handlers/member/checkEmail/mocks"
	"elevate/internal/lib/logger/handlers/slogdiscard"
	"elevate/internal/models"
	"elevate/internal/storage"
)

func TestCheckEmailHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(m *mocks.MemberFinder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Existing member",
			path: "/api/members/check-email/Ada@Example.com",
			mockSetup: func(m *mocks.MemberFinder) {
				m.On("MemberByEmail", mock.Anything, "ada@example.com").
					Return(&models.Member{Email: "ada@example.com", Status: models.MemberStatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"exists":true,"status":"approved"}`,
		},
		{
			name: "Unknown email",
			path: "/api/members/check-email/nobody@example.com",
			mockSetup: func(m *mocks.MemberFinder) {
				m.On("MemberByEmail", mock.Anything, "nobody@example.com").
					Return(nil, storage.ErrMemberNotFound)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"exists":false,"status":null}`,
		},
		{
			name: "Storage failure",
			path: "/api/members/check-email/ada@example.com",
			mockSetup: func(m *mocks.MemberFinder) {
				m.On("MemberByEmail", mock.Anything, "ada@example.com").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Failed to check email"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			finder := mocks.NewMemberFinder(t)
			tc.mockSetup(finder)

			router := chi.NewRouter()
			router.Get("/api/members/check-email/{email}", New(logger, finder))

			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
