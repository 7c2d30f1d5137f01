package domain

import "strings"

// Population selects which account store a credential is checked against.
type Population string

const (
	PopulationStaff    Population = "STAFF"
	PopulationCustomer Population = "CUSTOMER"
)

// Credential is a submitted login attempt.
type Credential struct {
	Username string
	Password string
	IsStaff  bool
}

// Population returns the account population the credential targets.
func (c Credential) Population() Population {
	if c.IsStaff {
		return PopulationStaff
	}
	return PopulationCustomer
}

// Valid reports whether both fields carry a non-blank value.
func (c *Credential) Valid() bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.Username) != "" && c.Password != ""
}
