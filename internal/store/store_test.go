package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

// runStoreTests exercises the Store contract. Every backend must pass it.
func runStoreTests(t *testing.T, newStore func(t *testing.T) store.Store) {
	ctx := context.Background()

	t.Run("create client assigns fresh id", func(t *testing.T) {
		db := newStore(t)

		first, err := db.CreateClient(ctx, domain.Client{ID: -5, Username: "john_doe"})
		require.NoError(t, err)
		assert.NotZero(t, first.ID)
		assert.NotEqual(t, int64(-5), first.ID, "caller-supplied id must be ignored")
		assert.Equal(t, "john_doe", first.Username)

		second, err := db.CreateClient(ctx, domain.Client{Username: "jane_doe"})
		require.NoError(t, err)
		assert.NotZero(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("get client", func(t *testing.T) {
		db := newStore(t)

		created, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)

		got, err := db.GetClient(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "john_doe", got.Username)

		_, err = db.GetClient(ctx, created.ID+1000)
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})

	t.Run("list clients", func(t *testing.T) {
		db := newStore(t)

		a, err := db.CreateClient(ctx, domain.Client{Username: "a"})
		require.NoError(t, err)
		b, err := db.CreateClient(ctx, domain.Client{Username: "b"})
		require.NoError(t, err)

		clients, err := db.ListClients(ctx)
		require.NoError(t, err)

		ids := make([]int64, 0, len(clients))
		for _, c := range clients {
			ids = append(ids, c.ID)
		}
		assert.Contains(t, ids, a.ID)
		assert.Contains(t, ids, b.ID)
	})

	t.Run("create account for unknown client fails and persists nothing", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)

		_, err = db.CreateAccount(ctx, domain.Account{AmountInCents: 100, ClientID: client.ID + 1000})
		assert.ErrorIs(t, err, store.ErrClientNotFound)

		accounts, err := db.ListAccounts(ctx, client.ID)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("create account for existing client", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)

		account, err := db.CreateAccount(ctx, domain.Account{AmountInCents: 1, ClientID: client.ID})
		require.NoError(t, err)
		assert.NotZero(t, account.ID)
		assert.Equal(t, client.ID, account.ClientID)
		assert.Equal(t, int64(1), account.AmountInCents)
	})

	t.Run("list accounts empty for fresh client", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)

		accounts, err := db.ListAccounts(ctx, client.ID)
		require.NoError(t, err)
		assert.NotNil(t, accounts)
		assert.Empty(t, accounts)

		_, err = db.ListAccounts(ctx, client.ID+1000)
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})

	t.Run("list accounts returns everything created", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)

		created := make(map[int64]domain.Account)
		for i := int64(0); i < 5; i++ {
			account, err := db.CreateAccount(ctx, domain.Account{AmountInCents: i * 100, ClientID: client.ID})
			require.NoError(t, err)
			created[account.ID] = *account
		}

		accounts, err := db.ListAccounts(ctx, client.ID)
		require.NoError(t, err)
		require.Len(t, accounts, len(created))
		for _, got := range accounts {
			want, ok := created[got.ID]
			require.True(t, ok, "unexpected account id %d", got.ID)
			assert.Equal(t, want.AmountInCents, got.AmountInCents)
			assert.Equal(t, want.ClientID, got.ClientID)
		}
	})

	t.Run("get account", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)
		account, err := db.CreateAccount(ctx, domain.Account{AmountInCents: 4200, ClientID: client.ID})
		require.NoError(t, err)

		got, err := db.GetAccount(ctx, client.ID, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
		assert.Equal(t, int64(4200), got.AmountInCents)

		_, err = db.GetAccount(ctx, client.ID, account.ID+1000)
		assert.Error(t, err)
	})

	t.Run("update client replaces username and keeps id", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)

		updated, err := db.UpdateClient(ctx, domain.Client{ID: client.ID, Username: "jon_snow"})
		require.NoError(t, err)
		assert.Equal(t, client.ID, updated.ID)
		assert.Equal(t, "jon_snow", updated.Username)

		got, err := db.GetClient(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, "jon_snow", got.Username)

		_, err = db.UpdateClient(ctx, domain.Client{ID: client.ID + 1000, Username: "nobody"})
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})

	t.Run("update account replaces balance", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)
		account, err := db.CreateAccount(ctx, domain.Account{AmountInCents: 100, ClientID: client.ID})
		require.NoError(t, err)

		updated, err := db.UpdateAccount(ctx, domain.Account{ID: account.ID, AmountInCents: 400000, ClientID: client.ID})
		require.NoError(t, err)
		assert.Equal(t, account.ID, updated.ID)
		assert.Equal(t, int64(400000), updated.AmountInCents)

		// Unknown account under an existing client.
		_, err = db.UpdateAccount(ctx, domain.Account{ID: account.ID + 1000, AmountInCents: 1, ClientID: client.ID})
		assert.Error(t, err)

		// Account under an unknown client.
		_, err = db.UpdateAccount(ctx, domain.Account{ID: account.ID, AmountInCents: 1, ClientID: client.ID + 1000})
		assert.Error(t, err)
	})

	t.Run("delete client cascades to its accounts", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)
		account, err := db.CreateAccount(ctx, domain.Account{AmountInCents: 100, ClientID: client.ID})
		require.NoError(t, err)

		deleted, err := db.DeleteClient(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, client.ID, deleted.ID)

		_, err = db.GetClient(ctx, client.ID)
		assert.ErrorIs(t, err, store.ErrClientNotFound)
		_, err = db.ListAccounts(ctx, client.ID)
		assert.ErrorIs(t, err, store.ErrClientNotFound)
		_, err = db.GetAccount(ctx, client.ID, account.ID)
		assert.Error(t, err)

		_, err = db.DeleteClient(ctx, client.ID)
		assert.ErrorIs(t, err, store.ErrClientNotFound)
	})

	t.Run("delete account leaves siblings intact", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "john_doe"})
		require.NoError(t, err)
		first, err := db.CreateAccount(ctx, domain.Account{AmountInCents: 100, ClientID: client.ID})
		require.NoError(t, err)
		second, err := db.CreateAccount(ctx, domain.Account{AmountInCents: 200, ClientID: client.ID})
		require.NoError(t, err)

		deleted, err := db.DeleteAccount(ctx, client.ID, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, deleted.ID)

		_, err = db.GetAccount(ctx, client.ID, first.ID)
		assert.Error(t, err)

		sibling, err := db.GetAccount(ctx, client.ID, second.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(200), sibling.AmountInCents)

		_, err = db.DeleteAccount(ctx, client.ID, first.ID)
		assert.Error(t, err)
	})

	t.Run("create then read round-trips fields", func(t *testing.T) {
		db := newStore(t)

		client, err := db.CreateClient(ctx, domain.Client{Username: "round_trip"})
		require.NoError(t, err)
		account, err := db.CreateAccount(ctx, domain.Account{AmountInCents: -250, ClientID: client.ID})
		require.NoError(t, err)

		gotClient, err := db.GetClient(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, *client, *gotClient)

		gotAccount, err := db.GetAccount(ctx, client.ID, account.ID)
		require.NoError(t, err)
		assert.Equal(t, *account, *gotAccount)
	})
}
