package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/service"
	"github.com/cupcade/vendpay/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestDevicePay_Success(t *testing.T) {
	mockDevice := mocks.NewMockDevicePayer(t)
	handler := NewHandler(nil, nil, nil, mockDevice, nil, testLogger())

	candidates := []models.ProductCandidate{
		{ProductID: "P1", ServoID: "servoA"},
		{ProductID: "P2", ServoID: "servoB"},
	}

	mockDevice.On("Pay", mock.Anything, service.DevicePayRequest{
		TagNumber:  "04A3B2",
		Candidates: candidates,
	}).Return(&service.DevicePayResult{ServoID: "servoB", BalanceCents: 700}, nil)

	rec := postJSON(t, handler.DevicePay, "/device/pay", devicePayRequest{
		TagNumber: "04A3B2",
		Products:  candidates,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp devicePayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "servoB", resp.ServoID)
	assert.Equal(t, int64(700), resp.Balance)
}

func TestDevicePay_CupCodes(t *testing.T) {
	tests := []struct {
		serviceErr      *service.ServiceError
		name            string
		expectedError   string
		expectedStatus  int
		expectedCupCode int
	}{
		{
			name:            "unknown tag returns 922",
			serviceErr:      &service.ServiceError{Code: service.ErrCodeTagNotFound, Message: "tag does not exist"},
			expectedStatus:  http.StatusNotFound,
			expectedCupCode: CupCodeTagDoesNotExist,
			expectedError:   "Tag does not exist",
		},
		{
			name:            "insufficient funds returns 911",
			serviceErr:      &service.ServiceError{Code: service.ErrCodeInsufficientFunds, Message: "not enough money"},
			expectedStatus:  http.StatusNotFound,
			expectedCupCode: CupCodeMoneyNotEnough,
			expectedError:   "Not enough money",
		},
		{
			name:            "internal failure returns 999",
			serviceErr:      &service.ServiceError{Code: service.ErrCodeInternalError, Message: "db down"},
			expectedStatus:  http.StatusInternalServerError,
			expectedCupCode: CupCodeInternalError,
			expectedError:   "Something bad happened",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDevice := mocks.NewMockDevicePayer(t)
			handler := NewHandler(nil, nil, nil, mockDevice, nil, testLogger())

			mockDevice.On("Pay", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			rec := postJSON(t, handler.DevicePay, "/device/pay", devicePayRequest{
				TagNumber: "04A3B2",
				ProductID: "P1",
			})

			require.Equal(t, tt.expectedStatus, rec.Code)
			var resp deviceErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCupCode, resp.CupCode)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestDevicePay_EmptyCandidates(t *testing.T) {
	mockDevice := mocks.NewMockDevicePayer(t)
	handler := NewHandler(nil, nil, nil, mockDevice, nil, testLogger())

	mockDevice.On("Pay", mock.Anything, mock.Anything).
		Return(nil, &service.ServiceError{Code: service.ErrCodeNoCandidates, Message: "no products supplied"})

	rec := postJSON(t, handler.DevicePay, "/device/pay", devicePayRequest{
		TagNumber: "04A3B2",
		Products:  []models.ProductCandidate{{ProductID: ""}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDevicePay_Validation(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, nil, testLogger())

	t.Run("missing tag number", func(t *testing.T) {
		rec := postJSON(t, handler.DevicePay, "/device/pay", devicePayRequest{
			ProductID: "P1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("neither product nor candidates", func(t *testing.T) {
		rec := postJSON(t, handler.DevicePay, "/device/pay", devicePayRequest{
			TagNumber: "04A3B2",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/device/pay", strings.NewReader("not json"))
		rec := httptest.NewRecorder()
		handler.DevicePay(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
