package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetrent-service/internal/domain/account"
)

func TestSeedAccounts(t *testing.T) {
	d := NewDirectory()

	admin, ok := d.Authenticate("admin", "admin")
	require.True(t, ok)
	assert.Equal(t, account.RoleAdmin, admin.Role)

	customer, ok := d.Authenticate("user", "user")
	require.True(t, ok)
	assert.Equal(t, account.RoleCustomer, customer.Role)

	_, ok = d.Authenticate("admin", "wrong")
	assert.False(t, ok)
	_, ok = d.Authenticate("nobody", "admin")
	assert.False(t, ok)
}

func TestRegisterCustomer(t *testing.T) {
	d := NewDirectory()

	require.True(t, d.RegisterCustomer("alice", "pw"))
	assert.False(t, d.RegisterCustomer("alice", "other"))

	a, ok := d.Authenticate("alice", "pw")
	require.True(t, ok)
	assert.Equal(t, account.RoleCustomer, a.Role)

	_, ok = d.Authenticate("alice", "other")
	assert.False(t, ok)
}

func TestUsernameIsCaseSensitive(t *testing.T) {
	d := NewDirectory()

	assert.True(t, d.UsernameExists("admin"))
	assert.False(t, d.UsernameExists("Admin"))
	assert.True(t, d.RegisterCustomer("Admin", "pw"))
}

func TestListAccountsIsDefensiveCopy(t *testing.T) {
	d := NewDirectory()

	list := d.ListAccounts()
	require.Len(t, list, 2)
	list[0].Username = "mutated"

	assert.True(t, d.UsernameExists("admin"))
	assert.False(t, d.UsernameExists("mutated"))
}

func TestListAccountsCopiesPasswordHash(t *testing.T) {
	d := NewDirectory()

	list := d.ListAccounts()
	require.Len(t, list, 2)
	for i := range list[0].PasswordHash {
		list[0].PasswordHash[i] = 0
	}

	_, ok := d.Authenticate("admin", "admin")
	assert.True(t, ok)
}

func TestAuthenticateCopiesPasswordHash(t *testing.T) {
	d := NewDirectory()

	a, ok := d.Authenticate("admin", "admin")
	require.True(t, ok)
	for i := range a.PasswordHash {
		a.PasswordHash[i] = 0
	}

	_, ok = d.Authenticate("admin", "admin")
	assert.True(t, ok)
}

func TestDirectoryReset(t *testing.T) {
	d := NewDirectory()

	d.RegisterCustomer("alice", "pw")
	require.Len(t, d.ListAccounts(), 3)

	d.Reset()

	assert.Len(t, d.ListAccounts(), 2)
	assert.False(t, d.UsernameExists("alice"))
	_, ok := d.Authenticate("admin", "admin")
	assert.True(t, ok)
}
