package domain

// Client is a bank customer. A client owns zero or more accounts.
type Client struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Equal reports identity equality. Two snapshots with the same ID are the
// same client regardless of username.
func (c Client) Equal(other Client) bool {
	return c.ID == other.ID
}

// Account holds a balance in cents, owned by exactly one client.
type Account struct {
	ID            int64 `json:"id"`
	AmountInCents int64 `json:"amount_in_cents"`
	ClientID      int64 `json:"client_id"`
}

// Equal reports identity equality by ID only. Callers may hold stale
// snapshots; a balance difference does not make it a different account.
func (a Account) Equal(other Account) bool {
	return a.ID == other.ID
}

// ClientRequest is the payload for creating or replacing a client.
// Path-supplied ids always override anything in the body.
type ClientRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

// AccountRequest is the payload for creating or replacing an account.
// The balance is a signed amount in cents; negative balances are allowed.
type AccountRequest struct {
	AmountInCents int64 `json:"amount_in_cents"`
}
