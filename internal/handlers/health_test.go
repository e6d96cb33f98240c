package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/benx421/moneybox/internal/api"
	"github.com/benx421/moneybox/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	tests := []struct {
		pingErr    error
		name       string
		wantStatus int
		want       api.HealthStatus
	}{
		{name: "healthy", wantStatus: http.StatusOK, want: api.Healthy},
		{name: "store unreachable", pingErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, want: api.Unhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChecker := mocks.NewMockHealthChecker(t)
			handler := NewHandler(nil, nil, nil, mockChecker, testLogger())

			mockChecker.On("PingContext", mock.Anything).Return(tt.pingErr).Once()

			rec := serve(handler, http.MethodGet, "/health", "")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp api.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Status)
		})
	}
}
