package domain

// Identity is the verified user record tokens are minted for.
type Identity struct {
	ID      int64
	Login   string
	Email   string
	Name    string
	Surname string
}

// Account is an Identity as persisted for a population, with the secret
// material needed to verify a credential.
type Account struct {
	Identity
	PasswordHash string
	Active       bool
}
