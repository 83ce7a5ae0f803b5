package api

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.store.ListClients(r.Context())
	if err != nil {
		h.respondStoreError(w, err, "GET", "/clients")
		return
	}
	h.respondJSON(w, http.StatusOK, clients, "GET", "/clients")
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("POST", "/clients"))
	defer timer.ObserveDuration()

	var req domain.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/clients")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error(), "POST", "/clients")
		return
	}

	client, err := h.store.CreateClient(r.Context(), domain.Client{Username: req.Username})
	if err != nil {
		h.respondStoreError(w, err, "POST", "/clients")
		return
	}
	h.respondJSON(w, http.StatusCreated, client, "POST", "/clients")
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "GET", "/clients/{id}")
		return
	}

	client, err := h.store.GetClient(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, err, "GET", "/clients/{id}")
		return
	}
	h.respondJSON(w, http.StatusOK, client, "GET", "/clients/{id}")
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("PUT", "/clients/{id}"))
	defer timer.ObserveDuration()

	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "PUT", "/clients/{id}")
		return
	}

	var req domain.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "PUT", "/clients/{id}")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error(), "PUT", "/clients/{id}")
		return
	}

	client, err := h.store.UpdateClient(r.Context(), domain.Client{ID: id, Username: req.Username})
	if err != nil {
		h.respondStoreError(w, err, "PUT", "/clients/{id}")
		return
	}
	h.respondJSON(w, http.StatusOK, client, "PUT", "/clients/{id}")
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("DELETE", "/clients/{id}"))
	defer timer.ObserveDuration()

	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "DELETE", "/clients/{id}")
		return
	}

	client, err := h.store.DeleteClient(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, err, "DELETE", "/clients/{id}")
		return
	}
	h.respondJSON(w, http.StatusOK, client, "DELETE", "/clients/{id}")
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("POST", "/clients/{id}/accounts"))
	defer timer.ObserveDuration()

	clientID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "POST", "/clients/{id}/accounts")
		return
	}

	var req domain.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/clients/{id}/accounts")
		return
	}

	account, err := h.store.CreateAccount(r.Context(), domain.Account{
		AmountInCents: req.AmountInCents,
		ClientID:      clientID,
	})
	if err != nil {
		h.respondStoreError(w, err, "POST", "/clients/{id}/accounts")
		return
	}
	h.respondJSON(w, http.StatusCreated, account, "POST", "/clients/{id}/accounts")
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "GET", "/clients/{id}/accounts")
		return
	}

	accounts, err := h.store.ListAccounts(r.Context(), clientID)
	if err != nil {
		h.respondStoreError(w, err, "GET", "/clients/{id}/accounts")
		return
	}
	h.respondJSON(w, http.StatusOK, accounts, "GET", "/clients/{id}/accounts")
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "GET", "/clients/{id}/accounts/{aid}")
		return
	}
	accountID, err := pathID(r, "aid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account id", "GET", "/clients/{id}/accounts/{aid}")
		return
	}

	account, err := h.store.GetAccount(r.Context(), clientID, accountID)
	if err != nil {
		h.respondStoreError(w, err, "GET", "/clients/{id}/accounts/{aid}")
		return
	}
	h.respondJSON(w, http.StatusOK, account, "GET", "/clients/{id}/accounts/{aid}")
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("PUT", "/clients/{id}/accounts/{aid}"))
	defer timer.ObserveDuration()

	clientID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "PUT", "/clients/{id}/accounts/{aid}")
		return
	}
	accountID, err := pathID(r, "aid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account id", "PUT", "/clients/{id}/accounts/{aid}")
		return
	}

	var req domain.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "PUT", "/clients/{id}/accounts/{aid}")
		return
	}

	account, err := h.store.UpdateAccount(r.Context(), domain.Account{
		ID:            accountID,
		AmountInCents: req.AmountInCents,
		ClientID:      clientID,
	})
	if err != nil {
		h.respondStoreError(w, err, "PUT", "/clients/{id}/accounts/{aid}")
		return
	}
	h.respondJSON(w, http.StatusOK, account, "PUT", "/clients/{id}/accounts/{aid}")
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("DELETE", "/clients/{id}/accounts/{aid}"))
	defer timer.ObserveDuration()

	clientID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid client id", "DELETE", "/clients/{id}/accounts/{aid}")
		return
	}
	accountID, err := pathID(r, "aid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account id", "DELETE", "/clients/{id}/accounts/{aid}")
		return
	}

	account, err := h.store.DeleteAccount(r.Context(), clientID, accountID)
	if err != nil {
		h.respondStoreError(w, err, "DELETE", "/clients/{id}/accounts/{aid}")
		return
	}
	h.respondJSON(w, http.StatusOK, account, "DELETE", "/clients/{id}/accounts/{aid}")
}
