package domain

import "strings"

// Customer represents one row of the legacy 'customer' table.
// Records are created by the registration flow and read-only thereafter.
type Customer struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"column:first_name;size:255" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:255" json:"last_name"`
	Email     string `gorm:"size:255" json:"email"`
}

func (Customer) TableName() string { return "customer" }

// DisplayName is the denormalized full name used by order listings,
// computed by concatenation rather than stored.
func (c Customer) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
