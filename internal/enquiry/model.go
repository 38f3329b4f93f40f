package enquiry

import (
	"strings"
)

// Enquiry categories offered by the site. The last one is a catch-all that
// requires the free-text Other field to be filled.
const (
	CategoryGrowth   = "Fractional CMO / Growth Lead"
	CategoryCreative = "Creative & Product Strategy"
	CategoryVenture  = "Venture & IP Architecture"
	CategoryOther    = "Other"

	// CategoryUnspecified marks submissions that arrived without a category.
	// Category is informational, so an empty value is recorded honestly
	// instead of being rejected.
	CategoryUnspecified = "Unspecified"
)

// Categories lists the selectable enquiry categories in display order.
var Categories = []string{
	CategoryGrowth,
	CategoryCreative,
	CategoryVenture,
	CategoryOther,
}

// KnownCategory reports whether s is one of the selectable categories.
func KnownCategory(s string) bool {
	for _, c := range Categories {
		if s == c {
			return true
		}
	}
	return false
}

// Enquiry is one contact-form submission as it travels over the wire.
type Enquiry struct {
	Type    string `json:"enquiryType"`
	Other   string `json:"enquiryOther"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Normalized returns a copy with every field trimmed and an empty category
// replaced by CategoryUnspecified. The client trims before sending too; the
// server never trusts it and trims again.
func (e Enquiry) Normalized() Enquiry {
	n := Enquiry{
		Type:    strings.TrimSpace(e.Type),
		Other:   strings.TrimSpace(e.Other),
		Name:    strings.TrimSpace(e.Name),
		Email:   strings.TrimSpace(e.Email),
		Phone:   strings.TrimSpace(e.Phone),
		Message: strings.TrimSpace(e.Message),
	}
	if n.Type == "" {
		n.Type = CategoryUnspecified
	}
	return n
}
