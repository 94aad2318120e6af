package entity

// IdentityProfile is the subject profile returned by the BVN identity provider.
type IdentityProfile struct {
	BVN         string `json:"bvn"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	PhoneNumber string `json:"phone_number"`
	Gender      string `json:"gender,omitempty"`
	PhotoBase64 string `json:"photo,omitempty"`
}

// FullName returns the space-joined non-empty name parts.
func (p *IdentityProfile) FullName() string {
	name := p.FirstName
	for _, part := range []string{p.MiddleName, p.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}

	return name
}
