package handlers

import (
	"net/http"

	"github.com/benx421/moneybox/internal/api"
)

// CreateTransfer handles POST /api/v1/transfers
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req api.TransferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeServiceError(w, operationTransfer, err)
		return
	}

	fromID, err := parseAccountID(req.FromAccountID, "from_account_id")
	if err != nil {
		h.writeServiceError(w, operationTransfer, err)
		return
	}

	toID, err := parseAccountID(req.ToAccountID, "to_account_id")
	if err != nil {
		h.writeServiceError(w, operationTransfer, err)
		return
	}

	// both sides would load separate copies and the last save would win
	if fromID == toID {
		h.writeServiceError(w, operationTransfer, invalidRequest("from_account_id and to_account_id must differ"))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.writeServiceError(w, operationTransfer, err)
		return
	}

	from, to, err := h.transferrer.Transfer(r.Context(), fromID, toID, amount)
	if err != nil {
		code := h.writeServiceError(w, operationTransfer, err)
		recordOperation(operationTransfer, code, amount)
		return
	}
	recordOperation(operationTransfer, "", amount)

	h.logger.Info("transfer completed",
		"from_account_id", fromID,
		"to_account_id", toID,
		"amount", amount.String(),
	)

	writeJSON(w, http.StatusOK, api.TransferResponse{
		FromAccount: api.NewAccount(from),
		ToAccount:   api.NewAccount(to),
	})
}
