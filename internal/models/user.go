// Package models defines the customer, account and statement types held in
// a GophBank session.
package models

// User is a registered bank customer. Users are never mutated after
// registration.
type User struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date" validate:"dmydate"`
	Identity  string `json:"identity" validate:"identity"`
	Address   string `json:"address"`
}
