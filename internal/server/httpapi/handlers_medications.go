package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pandax-i/healthhub/internal/server/models"
)

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (a *API) handleMedicationList(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	meds, err := a.meds.List(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, meds)
}

func (a *API) handleMedicationCreate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var m models.Medication
	if err := decodeJSON(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	created, err := a.meds.Create(ctx, &m)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleMedicationUpdate(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	medID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var m models.Medication
	if err := decodeJSON(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m.ID = medID
	m.UserID = id.UserID

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.meds.Update(ctx, &m); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (a *API) handleMedicationDelete(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	medID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.meds.Delete(ctx, id.UserID, medID); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleMedicationTake(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	medID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	// The body is optional; an absent or zero quantity means one dose.
	var req struct {
		Quantity int `json:"quantity"`
	}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.meds.Take(ctx, id.UserID, medID, req.Quantity); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "intake recorded"})
}

func (a *API) handleMedicationLogs(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())
	medID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	logs, err := a.meds.Logs(ctx, id.UserID, medID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}
