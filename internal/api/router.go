package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every endpoint to its handler.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	r.HandleFunc("/clients", h.ListClients).Methods("GET")
	r.HandleFunc("/clients", h.CreateClient).Methods("POST")
	r.HandleFunc("/clients/{id}", h.GetClient).Methods("GET")
	r.HandleFunc("/clients/{id}", h.UpdateClient).Methods("PUT")
	r.HandleFunc("/clients/{id}", h.DeleteClient).Methods("DELETE")

	r.HandleFunc("/clients/{id}/accounts", h.CreateAccount).Methods("POST")
	r.HandleFunc("/clients/{id}/accounts", h.ListAccounts).Methods("GET")
	r.HandleFunc("/clients/{id}/accounts/{aid}", h.GetAccount).Methods("GET")
	r.HandleFunc("/clients/{id}/accounts/{aid}", h.UpdateAccount).Methods("PUT")
	r.HandleFunc("/clients/{id}/accounts/{aid}", h.DeleteAccount).Methods("DELETE")

	return r
}
