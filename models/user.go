package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated principal.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Regions is the fixed set of selectable profile regions.
var Regions = []string{
	"North America", "South America", "Europe", "Asia", "Africa", "Oceania",
}

// Industries is the fixed set of selectable business industries.
var Industries = []string{
	"Technology", "Healthcare", "Finance", "Education", "Manufacturing",
	"Retail", "Hospitality", "Agriculture", "Construction", "Transportation",
	"Energy", "Entertainment", "Consulting", "Real Estate", "Other",
}

// ValidRegion reports whether r is one of the selectable regions.
func ValidRegion(r string) bool {
	for _, v := range Regions {
		if v == r {
			return true
		}
	}
	return false
}

// ValidIndustry reports whether i is one of the selectable industries.
func ValidIndustry(i string) bool {
	for _, v := range Industries {
		if v == i {
			return true
		}
	}
	return false
}

// Profile holds the one-time completion attributes for a user.
type Profile struct {
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	Region           string    `json:"region"`
	Location         string    `json:"location"`
	BusinessIndustry string    `json:"business_industry"`
	PaymentStatus    string    `json:"payment_status"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsComplete reports whether all four completion attributes are set.
func (p *Profile) IsComplete() bool {
	if p == nil {
		return false
	}
	return p.FullName != "" && p.Region != "" && p.Location != "" && p.BusinessIndustry != ""
}
