package memberStats

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"elevate/internal/http-server/handlers/member/memberStats/mocks"
	"elevate/internal/lib/logger/handlers/slogdiscard"
	"elevate/internal/models"
)

func TestMemberStatsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.MemberStatsProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.MemberStatsProvider) {
				m.On("MemberStats", mock.Anything).Return(&models.MemberStats{
					TotalMembers:   2,
					PendingMembers: 5,
					InterestStats:  []models.GroupCount{{Key: "IoT", Count: 2}},
					YearStats:      []models.GroupCount{{Key: "1st", Count: 1}, {Key: "3rd", Count: 1}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"data":{"totalMembers":2,"pendingMembers":5,
				"interestStats":[{"_id":"IoT","count":2}],
				"yearStats":[{"_id":"1st","count":1},{"_id":"3rd","count":1}]}}`,
		},
		{
			name: "Nothing approved yet",
			mockSetup: func(m *mocks.MemberStatsProvider) {
				m.On("MemberStats", mock.Anything).Return(&models.MemberStats{PendingMembers: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":{"totalMembers":0,"pendingMembers":1,"interestStats":[],"yearStats":[]}}`,
		},
		{
			name: "Storage failure",
			mockSetup: func(m *mocks.MemberStatsProvider) {
				m.On("MemberStats", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Failed to fetch statistics"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewMemberStatsProvider(t)
			tc.mockSetup(provider)

			rr := httptest.NewRecorder()
			New(logger, provider).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/members/stats", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
