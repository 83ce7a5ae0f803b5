package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

// foreignKeyViolation is the postgres error code raised when an insert
// references a missing bank_client row.
const foreignKeyViolation = "23503"

// Postgres backs the store with two tables, bank_client and bank_account.
// Each operation is one parameterized statement drawn from the pool; every
// mutating statement uses RETURNING so existence is checked and the
// post-mutation row fetched in a single round trip. Ids come from the
// tables' own sequences. Cascade delete of a client's accounts is enforced
// by the schema's ON DELETE CASCADE.
type Postgres struct {
	Db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, connString string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Postgres{Db: pool}, nil
}

func (p *Postgres) Close() {
	p.Db.Close()
}

func (p *Postgres) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	var stored domain.Client
	err := p.Db.QueryRow(ctx,
		"INSERT INTO bank_client (username) VALUES ($1) RETURNING client_id, username",
		client.Username).Scan(&stored.ID, &stored.Username)
	if err != nil {
		return nil, fmt.Errorf("client insert failed: %w", err)
	}
	return &stored, nil
}

func (p *Postgres) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	var client domain.Client
	err := p.Db.QueryRow(ctx,
		"SELECT client_id, username FROM bank_client WHERE client_id = $1",
		id).Scan(&client.ID, &client.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (p *Postgres) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := p.Db.Query(ctx, "SELECT client_id, username FROM bank_client")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.Username); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (p *Postgres) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	var stored domain.Client
	err := p.Db.QueryRow(ctx,
		"UPDATE bank_client SET username = $1 WHERE client_id = $2 RETURNING client_id, username",
		client.Username, client.ID).Scan(&stored.ID, &stored.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("client update failed: %w", err)
	}
	return &stored, nil
}

func (p *Postgres) DeleteClient(ctx context.Context, id int64) (*domain.Client, error) {
	var deleted domain.Client
	err := p.Db.QueryRow(ctx,
		"DELETE FROM bank_client WHERE client_id = $1 RETURNING client_id, username",
		id).Scan(&deleted.ID, &deleted.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("client delete failed: %w", err)
	}
	return &deleted, nil
}

func (p *Postgres) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var stored domain.Account
	err := p.Db.QueryRow(ctx,
		"INSERT INTO bank_account (amount_in_cents, client_id) VALUES ($1, $2) RETURNING account_id, amount_in_cents, client_id",
		account.AmountInCents, account.ClientID).Scan(&stored.ID, &stored.AmountInCents, &stored.ClientID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("account insert failed: %w", err)
	}
	return &stored, nil
}

func (p *Postgres) GetAccount(ctx context.Context, clientID, accountID int64) (*domain.Account, error) {
	var account domain.Account
	err := p.Db.QueryRow(ctx,
		"SELECT account_id, amount_in_cents, client_id FROM bank_account WHERE client_id = $1 AND account_id = $2",
		clientID, accountID).Scan(&account.ID, &account.AmountInCents, &account.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (p *Postgres) ListAccounts(ctx context.Context, clientID int64) ([]domain.Account, error) {
	// Probe for the client first so an unknown client is an error rather
	// than an empty list, matching the in-memory behavior.
	var exists bool
	err := p.Db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM bank_client WHERE client_id = $1)", clientID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	rows, err := p.Db.Query(ctx,
		"SELECT account_id, amount_in_cents, client_id FROM bank_account WHERE client_id = $1",
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.AmountInCents, &account.ClientID); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (p *Postgres) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var stored domain.Account
	err := p.Db.QueryRow(ctx,
		"UPDATE bank_account SET amount_in_cents = $1 WHERE client_id = $2 AND account_id = $3 RETURNING account_id, amount_in_cents, client_id",
		account.AmountInCents, account.ClientID, account.ID).Scan(&stored.ID, &stored.AmountInCents, &stored.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("account update failed: %w", err)
	}
	return &stored, nil
}

func (p *Postgres) DeleteAccount(ctx context.Context, clientID, accountID int64) (*domain.Account, error) {
	var deleted domain.Account
	err := p.Db.QueryRow(ctx,
		"DELETE FROM bank_account WHERE client_id = $1 AND account_id = $2 RETURNING account_id, amount_in_cents, client_id",
		clientID, accountID).Scan(&deleted.ID, &deleted.AmountInCents, &deleted.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("account delete failed: %w", err)
	}
	return &deleted, nil
}
