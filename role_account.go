package emailverifier

import "strings"

// IsRoleAccount reports whether username (the local-part) is a known
// role-based account (admin, support, postmaster, ...) rather than an
// individual's mailbox, per spec.md §3/§4.11.
func (v *Verifier) IsRoleAccount(username string) bool {
	_, ok := roleAccounts[strings.ToLower(username)]
	return ok
}
