package service

// Token roles. Customer tokens identify a user from the Users collection;
// admin tokens identify the fixed operator credential and never reference
// a stored user.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// TokenClaims is the validated content of a bearer token.
type TokenClaims struct {
	Subject string // User id for customer tokens, operator email for admin tokens.
	Role    string // RoleCustomer or RoleAdmin.
}

// TokenService issues and validates the bearer tokens that carry session
// state. Customer and admin tokens are signed with separate secrets, so one
// can never be replayed as the other.
type TokenService interface {
	// GenerateCustomerToken issues an access token for the given user id.
	GenerateCustomerToken(userID string) (string, error)

	// GenerateAdminToken issues a short-lived operator token.
	GenerateAdminToken(subject string) (string, error)

	// ValidateCustomerToken parses and verifies a customer access token.
	ValidateCustomerToken(token string) (*TokenClaims, error)

	// ValidateAdminToken parses and verifies an operator token.
	ValidateAdminToken(token string) (*TokenClaims, error)
}
