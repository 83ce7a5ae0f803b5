package store

import (
	"context"
	"errors"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

var (
	// ErrClientNotFound indicates the targeted client does not exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrAccountNotFound indicates the client exists but the targeted
	// account does not, or the (client, account) pair does not match.
	ErrAccountNotFound = errors.New("account not found")
)

// Store is the persistence contract for clients and accounts. Two
// implementations exist: Memory and Postgres. The backend is chosen once at
// process start; handlers only ever see this interface.
//
// Create operations ignore any caller-supplied id and return the stored copy
// with the authoritative generated id. Update operations do a full replace of
// the mutable fields keyed by id. Delete operations return the removed entity.
// Ids are monotonically increasing and never reused within a backend, but the
// two backends generate them independently — callers must not assume numeric
// compatibility across them.
type Store interface {
	CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	// DeleteClient removes the client and all of its accounts.
	DeleteClient(ctx context.Context, id int64) (*domain.Client, error)

	// CreateAccount fails with ErrClientNotFound when account.ClientID does
	// not reference an existing client; nothing is persisted in that case.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	GetAccount(ctx context.Context, clientID, accountID int64) (*domain.Account, error)
	// ListAccounts returns an empty slice for a client with no accounts and
	// ErrClientNotFound for a client that does not exist.
	ListAccounts(ctx context.Context, clientID int64) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, clientID, accountID int64) (*domain.Account, error)
}
