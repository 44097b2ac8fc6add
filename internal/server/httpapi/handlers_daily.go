package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pandax-i/healthhub/internal/server/models"
)

func (a *API) handleDailyItemList(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	items, err := a.daily.ListItems(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *API) handleDailyItemCreate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var item models.DailyItem
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	created, err := a.daily.CreateItem(ctx, &item)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleDailyItemDelete(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.daily.DeleteItem(ctx, id.UserID, itemID); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleDailyItemComplete(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.daily.CompleteItem(ctx, id.UserID, itemID); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "item completed"})
}

func (a *API) handleDailyLogsByDate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	date := chi.URLParam(r, "date")

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	logs, err := a.daily.LogsByDate(ctx, id.UserID, date)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (a *API) handleDailyLogSave(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var l models.DailyLog
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.daily.SaveLog(ctx, &l); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "log saved"})
}

func (a *API) handleDailyLogSearch(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	logs, err := a.daily.SearchLogs(ctx, id.UserID, r.URL.Query().Get("q"))
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}
