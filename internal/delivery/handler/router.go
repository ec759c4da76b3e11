package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/SheikhZaeem/Task-Manager/internal/delivery/middleware"
	"github.com/SheikhZaeem/Task-Manager/internal/infrastructure"
)

// NewRouter wires all routes. /register, /login, and /health are public;
// everything under /tasks requires a valid bearer token.
func NewRouter(auth *AuthHandler, tasks *TaskHandler, tokens *infrastructure.JWTService, limiter *rate.Limiter) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RateLimit(limiter))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/register", auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", auth.Login).Methods(http.MethodPost)

	protected := r.PathPrefix("/tasks").Subrouter()
	protected.Use(middleware.JWTAuth(tokens))
	protected.HandleFunc("", tasks.List).Methods(http.MethodGet)
	protected.HandleFunc("", tasks.Create).Methods(http.MethodPost)
	protected.HandleFunc("/report", tasks.Report).Methods(http.MethodGet)
	protected.HandleFunc("/{id}", tasks.Update).Methods(http.MethodPut)
	protected.HandleFunc("/{id}", tasks.Delete).Methods(http.MethodDelete)

	return r
}
