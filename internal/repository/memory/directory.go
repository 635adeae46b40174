// Package memory holds the in-memory stores behind the rental engine: the
// user directory, the vehicle registry and the rental ledger. All state is
// process-local and lives for the life of the process; the stores are meant
// for a single logical thread of control and do no locking.
package memory

import (
	"golang.org/x/crypto/bcrypt"

	"fleetrent-service/internal/domain/account"
)

// Directory holds the registered accounts and authenticates logins.
type Directory struct {
	accounts []account.Account
}

// NewDirectory creates a directory seeded with the two default accounts.
func NewDirectory() *Directory {
	d := &Directory{}
	d.Reset()
	return d
}

// Authenticate returns the first account, in registration order, whose
// username and password both match.
func (d *Directory) Authenticate(username, password string) (*account.Account, bool) {
	for i := range d.accounts {
		if d.accounts[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(d.accounts[i].PasswordHash, []byte(password)) == nil {
			a := cloneAccount(d.accounts[i])
			return &a, true
		}
	}
	return nil, false
}

// UsernameExists reports whether the exact username is registered.
func (d *Directory) UsernameExists(username string) bool {
	for i := range d.accounts {
		if d.accounts[i].Username == username {
			return true
		}
	}
	return false
}

// RegisterCustomer appends a Customer account. It returns false when the
// username is already taken.
func (d *Directory) RegisterCustomer(username, password string) bool {
	if d.UsernameExists(username) {
		return false
	}
	d.accounts = append(d.accounts, account.Account{
		Username:     username,
		PasswordHash: hashPassword(password),
		Role:         account.RoleCustomer,
	})
	return true
}

// ListAccounts returns a copy of all accounts in registration order.
func (d *Directory) ListAccounts() []account.Account {
	out := make([]account.Account, len(d.accounts))
	for i := range d.accounts {
		out[i] = cloneAccount(d.accounts[i])
	}
	return out
}

// cloneAccount deep-copies an account so callers cannot write through the
// shared PasswordHash backing array.
func cloneAccount(a account.Account) account.Account {
	a.PasswordHash = append([]byte(nil), a.PasswordHash...)
	return a
}

// Reset clears all accounts and reseeds the defaults: admin/admin (Admin)
// and user/user (Customer).
func (d *Directory) Reset() {
	d.accounts = d.accounts[:0]
	d.accounts = append(d.accounts,
		account.Account{Username: "admin", PasswordHash: hashPassword("admin"), Role: account.RoleAdmin},
		account.Account{Username: "user", PasswordHash: hashPassword("user"), Role: account.RoleCustomer},
	)
}

func hashPassword(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// Only reachable for passwords over 72 bytes; registration caps
		// length well below that.
		panic(err)
	}
	return hash
}
