package httpapi

import (
	"net/http"

	"github.com/pandax-i/healthhub/internal/server/models"
)

func (a *API) handleMemoList(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	memos, err := a.memos.List(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, memos)
}

func (a *API) handleMemoCreate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var m models.Memo
	if err := decodeJSON(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	created, err := a.memos.Create(ctx, &m)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleMemoSetStatus(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	memoID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		IsCompleted bool `json:"is_completed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.memos.SetStatus(ctx, id.UserID, memoID, req.IsCompleted); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "memo updated"})
}

func (a *API) handleMemoDelete(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	memoID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.memos.Delete(ctx, id.UserID, memoID); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleMemoSearch(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	memos, err := a.memos.SearchCompleted(ctx, id.UserID, r.URL.Query().Get("q"))
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, memos)
}
