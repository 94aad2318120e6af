// Package entity contains the core business objects of the project.
package entity

import "strings"

// AddressClaim is the free-text address a subject claims to live at.
type AddressClaim struct {
	HouseNumber string `json:"house_number"` // e.g. "12B"
	Street      string `json:"street"`       // Street name.
	City        string `json:"city"`         // City or LGA.
	State       string `json:"state"`        // State or region.
}

// Flatten joins the non-empty parts into the single line sent to the geocoder,
// e.g. "12B Allen Avenue, Ikeja, Lagos".
func (a AddressClaim) Flatten() string {
	street := strings.TrimSpace(strings.Join([]string{
		strings.TrimSpace(a.HouseNumber),
		strings.TrimSpace(a.Street),
	}, " "))

	parts := make([]string, 0, 3)
	for _, part := range []string{street, strings.TrimSpace(a.City), strings.TrimSpace(a.State)} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// IsEmpty reports whether no part of the claim was supplied.
func (a AddressClaim) IsEmpty() bool {
	return a.Flatten() == ""
}
