package models

// DefaultAgencyCode is the agency every account is opened under.
const DefaultAgencyCode = "0001"

// Account is a checking account. Owner points at a User held by the
// registry; the account does not own it.
type Account struct {
	AgencyCode string `json:"agency_code"`
	Number     int    `json:"number"`
	Owner      *User  `json:"-"`
}

// HolderName returns the owner's name, or "" when the account has no owner.
func (a *Account) HolderName() string {
	if a == nil || a.Owner == nil {
		return ""
	}
	return a.Owner.Name
}
