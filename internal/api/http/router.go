package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"orderflow/internal/domain"
	"orderflow/internal/review"
)

type routeRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

func NewRouter(handlers ...routeRegistrar) http.Handler {
	r := mux.NewRouter()
	for _, handler := range handlers {
		handler.RegisterRoutes(r)
	}
	r.HandleFunc("/health", healthCheck).Methods("GET")
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the error taxonomy onto HTTP statuses; the condition
// kind always reaches the caller.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidValue):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrIllegalTransition):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, review.ErrOrderNotDelivered):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, review.ErrDuplicateRating):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
