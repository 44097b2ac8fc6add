package httpapi

import (
	"net/http"

	"github.com/pandax-i/healthhub/internal/server/models"
)

func (a *API) handleStoolList(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	logs, err := a.stool.List(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (a *API) handleStoolDates(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	dates, err := a.stool.Dates(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, dates)
}

func (a *API) handleStoolCreate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var l models.StoolLog
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	created, err := a.stool.Create(ctx, &l)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleStoolUpdate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	logID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var l models.StoolLog
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l.ID = logID
	l.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	updated, err := a.stool.Update(ctx, &l)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *API) handleStoolDelete(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	logID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.stool.Delete(ctx, id.UserID, logID); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
