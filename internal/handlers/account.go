package handlers

import (
	"errors"
	"net/http"

	"github.com/benx421/moneybox/internal/api"
	"github.com/benx421/moneybox/internal/models"
)

// GetAccount handles GET /api/v1/accounts/{accountId}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(r.PathValue("accountId"), "account id")
	if err != nil {
		// unparsable IDs cannot name an account
		writeError(w, api.ErrorCodeAccountNotFound, "account not found")
		return
	}

	account, err := h.accountGetter.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, api.ErrorCodeAccountNotFound, "account not found")
			return
		}
		h.logger.Error("failed to load account", "account_id", accountID, "error", err)
		writeError(w, api.ErrorCodeInternalError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, api.NewAccount(account))
}
