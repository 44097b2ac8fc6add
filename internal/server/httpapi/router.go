package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Router assembles the full route tree.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(a.requestLogger)

	allowed := a.corsAllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         int((10 * time.Minute).Seconds()),
	}))

	r.Get("/healthz", a.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", a.handleRegister)
		r.Post("/login", a.handleLogin)
		r.Get("/auth/oauth", a.handleOAuthStart)
		r.Get("/auth/oauth/callback", a.handleOAuthCallback)

		r.Group(func(r chi.Router) {
			r.Use(a.requireAuth)

			r.Get("/me", a.handleMe)
			r.Post("/change-password", a.handleChangePassword)

			r.Route("/medications", func(r chi.Router) {
				r.Get("/", a.handleMedicationList)
				r.Post("/", a.handleMedicationCreate)
				r.Put("/{id}", a.handleMedicationUpdate)
				r.Delete("/{id}", a.handleMedicationDelete)
				r.Post("/{id}/take", a.handleMedicationTake)
				r.Get("/{id}/logs", a.handleMedicationLogs)
			})

			r.Route("/stool-logs", func(r chi.Router) {
				r.Get("/", a.handleStoolList)
				r.Get("/dates", a.handleStoolDates)
				r.Post("/", a.handleStoolCreate)
				r.Put("/{id}", a.handleStoolUpdate)
				r.Delete("/{id}", a.handleStoolDelete)
			})

			r.Route("/daily-logs", func(r chi.Router) {
				r.Get("/items", a.handleDailyItemList)
				r.Post("/items", a.handleDailyItemCreate)
				r.Delete("/items/{id}", a.handleDailyItemDelete)
				r.Put("/items/{id}/complete", a.handleDailyItemComplete)
				r.Get("/logs/{date}", a.handleDailyLogsByDate)
				r.Post("/logs", a.handleDailyLogSave)
				r.Get("/history/search", a.handleDailyLogSearch)
			})

			r.Route("/memos", func(r chi.Router) {
				r.Get("/", a.handleMemoList)
				r.Post("/", a.handleMemoCreate)
				r.Put("/{id}/status", a.handleMemoSetStatus)
				r.Delete("/{id}", a.handleMemoDelete)
				r.Get("/history/search", a.handleMemoSearch)
			})

			r.Route("/finance", func(r chi.Router) {
				r.Get("/accounts", a.handleAccountList)
				r.Post("/accounts", a.handleAccountCreate)
				r.Get("/transactions", a.handleTransactionList)
				r.Post("/transactions", a.handleTransactionCreate)
				r.Get("/loans", a.handleLoanList)
				r.Post("/loans", a.handleLoanCreate)
				r.Put("/loans/{id}/status", a.handleLoanSetStatus)
			})
		})
	})

	return r
}

// handleHealthz pings the database with a short deadline.
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.db.PingContext(ctx); err != nil {
		respondError(w, http.StatusInternalServerError, "database unreachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
