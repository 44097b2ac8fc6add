package httpapi

import (
	"net/http"

	"github.com/pandax-i/healthhub/internal/server/models"
)

func (a *API) handleAccountList(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	accounts, err := a.finance.ListAccounts(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

func (a *API) handleAccountCreate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var acc models.Account
	if err := decodeJSON(r, &acc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	acc.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	created, err := a.finance.CreateAccount(ctx, &acc)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleTransactionList(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	txs, err := a.finance.ListTransactions(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, txs)
}

func (a *API) handleTransactionCreate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var tx models.Transaction
	if err := decodeJSON(r, &tx); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	created, err := a.finance.CreateTransaction(ctx, &tx)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleLoanList(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	loans, err := a.finance.ListLoans(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}

func (a *API) handleLoanCreate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var l models.Loan
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	created, err := a.finance.CreateLoan(ctx, &l)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleLoanSetStatus(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	loanID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.finance.SetLoanStatus(ctx, id.UserID, loanID, req.Status); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "loan updated"})
}
