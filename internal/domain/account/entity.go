package account

// Role determines which dashboard an account may use.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

// Account represents a registered user. Username is the immutable key and is
// compared case-sensitively. The password is stored as a bcrypt hash and is
// never serialized.
type Account struct {
	Username     string `json:"username"`
	PasswordHash []byte `json:"-"`
	Role         Role   `json:"role"`
}
