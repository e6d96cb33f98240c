package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/benx421/moneybox/internal/api"
	"github.com/benx421/moneybox/internal/metrics"
	"github.com/benx421/moneybox/internal/models"
	"github.com/benx421/moneybox/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxRequestBodyBytes = 1 << 20

// Operation names used as metric labels
const (
	operationWithdrawal = "withdrawal"
	operationTransfer   = "transfer"
)

// requestError is a client error detected before any service call
type requestError struct {
	code    api.ErrorCode
	message string
}

func (e *requestError) Error() string {
	return e.message
}

func invalidRequest(format string, args ...any) *requestError {
	return &requestError{code: api.ErrorCodeInvalidRequest, message: fmt.Sprintf(format, args...)}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return invalidRequest("invalid request body: %v", err)
	}
	return nil
}

func parseAccountID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidRequest("invalid %s: must be a UUID", field)
	}
	return id, nil
}

// parseAmount reads a decimal string and applies service.ValidateAmount
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &requestError{code: api.ErrorCodeInvalidAmount, message: "invalid amount: must be a decimal string"}
	}
	if err := service.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	case service.ErrCodeInsufficientFunds:
		return api.ErrorCodeInsufficientFunds
	case service.ErrCodePayInLimitReached:
		return api.ErrorCodePayInLimitReached
	default:
		return api.ErrorCodeInternalError
	}
}

func statusForCode(code api.ErrorCode) int {
	switch code {
	case api.ErrorCodeInvalidAmount, api.ErrorCodeInvalidRequest:
		return http.StatusBadRequest
	case api.ErrorCodeInsufficientFunds:
		return http.StatusPaymentRequired
	case api.ErrorCodeAccountNotFound:
		return http.StatusNotFound
	case api.ErrorCodePayInLimitReached:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// writeServiceError maps err to an error response and returns the code sent.
// Errors the API does not recognise are logged and reported as internal.
func (h *Handler) writeServiceError(w http.ResponseWriter, operation string, err error) api.ErrorCode {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeError(w, reqErr.code, reqErr.message)
		return reqErr.code
	}

	if svcErr := extractServiceError(err); svcErr != nil {
		code := mapServiceErrorToCode(svcErr.Code)
		if code != api.ErrorCodeInternalError {
			writeError(w, code, svcErr.Message)
			return code
		}
	}

	if errors.Is(err, models.ErrNotFound) {
		writeError(w, api.ErrorCodeAccountNotFound, "account not found")
		return api.ErrorCodeAccountNotFound
	}

	h.logger.Error("unexpected error", "operation", operation, "error", err)
	writeError(w, api.ErrorCodeInternalError, "internal error")
	return api.ErrorCodeInternalError
}

func recordOperation(operation string, code api.ErrorCode, amount decimal.Decimal) {
	if code == "" {
		metrics.OperationsTotal.WithLabelValues(operation, "success").Inc()
		metrics.OperationAmount.WithLabelValues(operation).Observe(amount.InexactFloat64())
		return
	}
	metrics.OperationsTotal.WithLabelValues(operation, string(code)).Inc()
}

func writeError(w http.ResponseWriter, code api.ErrorCode, message string) {
	writeJSON(w, statusForCode(code), api.Error{Error: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(body)
}
