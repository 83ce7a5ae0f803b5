package store

import (
	"context"
	"sync"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

// Memory keeps all state in two nested maps: clientID -> Client, and
// clientID -> (accountID -> Account). Creating a client also creates its
// empty inner account map; the absence of that inner map is how "client not
// found" is detected on account creation. A single mutex serializes every
// operation, and the id counters increment under the same lock.
type Memory struct {
	mu          sync.Mutex
	nextClient  int64
	nextAccount int64
	clients     map[int64]domain.Client
	accounts    map[int64]map[int64]domain.Account
}

func NewMemory() *Memory {
	return &Memory{
		clients:  make(map[int64]domain.Client),
		accounts: make(map[int64]map[int64]domain.Account),
	}
}

func (m *Memory) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextClient++
	client.ID = m.nextClient
	m.clients[client.ID] = client
	m.accounts[client.ID] = make(map[int64]domain.Account)
	return &client, nil
}

func (m *Memory) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return &client, nil
}

func (m *Memory) ListClients(ctx context.Context) ([]domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clients := make([]domain.Client, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	return clients, nil
}

func (m *Memory) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[client.ID]; !ok {
		return nil, ErrClientNotFound
	}
	m.clients[client.ID] = client
	return &client, nil
}

// DeleteClient removes the client and, by dropping its inner map, every
// account it owns.
func (m *Memory) DeleteClient(ctx context.Context, id int64) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	delete(m.clients, id)
	delete(m.accounts, id)
	return &client, nil
}

// CreateAccount assigns ids from a counter shared across all clients, so
// account ids are globally unique, not per-client.
func (m *Memory) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, ok := m.accounts[account.ClientID]
	if !ok {
		return nil, ErrClientNotFound
	}
	m.nextAccount++
	account.ID = m.nextAccount
	accounts[account.ID] = account
	return &account, nil
}

func (m *Memory) GetAccount(ctx context.Context, clientID, accountID int64) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, ok := m.accounts[clientID]
	if !ok {
		return nil, ErrClientNotFound
	}
	account, ok := accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &account, nil
}

func (m *Memory) ListAccounts(ctx context.Context, clientID int64) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, ok := m.accounts[clientID]
	if !ok {
		return nil, ErrClientNotFound
	}
	out := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, account)
	}
	return out, nil
}

func (m *Memory) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, ok := m.accounts[account.ClientID]
	if !ok {
		return nil, ErrClientNotFound
	}
	if _, ok := accounts[account.ID]; !ok {
		return nil, ErrAccountNotFound
	}
	accounts[account.ID] = account
	return &account, nil
}

func (m *Memory) DeleteAccount(ctx context.Context, clientID, accountID int64) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, ok := m.accounts[clientID]
	if !ok {
		return nil, ErrClientNotFound
	}
	account, ok := accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	delete(accounts, accountID)
	return &account, nil
}
