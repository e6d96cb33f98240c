package handlers

import (
	"net/http"

	"github.com/benx421/moneybox/internal/api"
)

// CreateWithdrawal handles POST /api/v1/withdrawals
func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req api.WithdrawalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeServiceError(w, operationWithdrawal, err)
		return
	}

	accountID, err := parseAccountID(req.AccountID, "account_id")
	if err != nil {
		h.writeServiceError(w, operationWithdrawal, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.writeServiceError(w, operationWithdrawal, err)
		return
	}

	account, err := h.withdrawer.Withdraw(r.Context(), accountID, amount)
	if err != nil {
		code := h.writeServiceError(w, operationWithdrawal, err)
		recordOperation(operationWithdrawal, code, amount)
		return
	}
	recordOperation(operationWithdrawal, "", amount)

	h.logger.Info("withdrawal completed",
		"account_id", accountID,
		"amount", amount.String(),
	)

	writeJSON(w, http.StatusOK, api.WithdrawalResponse{
		Account: api.NewAccount(account),
	})
}
