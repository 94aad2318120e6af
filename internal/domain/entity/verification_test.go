package entity

import (
	"testing"
	"time"

	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validRecord() *VerificationRecord {
	address := geo.NewPoint(6.5244, 3.3792)
	device := geo.NewPoint(6.5248, 3.3795)
	acc := 30.0
	distance := geo.Distance(address, device)

	return &VerificationRecord{
		ID:             uuid.New(),
		SubjectID:      "22212345678",
		InputAddress:   "12 Allen Avenue, Ikeja, Lagos",
		AddressPoint:   address,
		DevicePoint:    device,
		DeviceAccuracy: &acc,
		PanoramaPoint:  device,
		DistanceMeters: distance,
		Outcome:        policy.Decide(distance, &acc),
		CreatedAt:      time.Now(),
	}
}

func TestVerificationRecord_CheckInvariants(t *testing.T) {
	assert.NoError(t, validRecord().CheckInvariants())
}

func TestVerificationRecord_CheckInvariants_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VerificationRecord)
	}{
		{"missing id", func(r *VerificationRecord) { r.ID = uuid.Nil }},
		{"zeroed distance", func(r *VerificationRecord) { r.DistanceMeters = 0 }},
		{"forced outcome", func(r *VerificationRecord) { r.Outcome = policy.OutcomeApproved }},
		{"unknown outcome", func(r *VerificationRecord) { r.Outcome = "maybe" }},
		{"bad coordinate", func(r *VerificationRecord) { r.PanoramaPoint = geo.NewPoint(120, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			assert.ErrorIs(t, record.CheckInvariants(), domainerrors.ErrInvariantViolation)
		})
	}
}

func TestVerificationRecord_CheckInvariants_ToleratesStorageRounding(t *testing.T) {
	record := validRecord()
	record.DistanceMeters += 0.001

	assert.NoError(t, record.CheckInvariants())
}

func TestAddressClaim_Flatten(t *testing.T) {
	tests := []struct {
		name  string
		claim AddressClaim
		want  string
	}{
		{
			name:  "full claim",
			claim: AddressClaim{HouseNumber: "12B", Street: "Allen Avenue", City: "Ikeja", State: "Lagos"},
			want:  "12B Allen Avenue, Ikeja, Lagos",
		},
		{
			name:  "no house number",
			claim: AddressClaim{Street: " Allen Avenue ", City: "Ikeja", State: "Lagos"},
			want:  "Allen Avenue, Ikeja, Lagos",
		},
		{
			name:  "city only",
			claim: AddressClaim{City: "Abuja"},
			want:  "Abuja",
		},
		{
			name:  "empty",
			claim: AddressClaim{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.claim.Flatten())
		})
	}

	assert.True(t, AddressClaim{HouseNumber: "  "}.IsEmpty())
}

func TestIdentityProfile_FullName(t *testing.T) {
	profile := &IdentityProfile{FirstName: "Adaeze", MiddleName: "N", LastName: "Okafor"}
	assert.Equal(t, "Adaeze N Okafor", profile.FullName())

	profile.MiddleName = ""
	assert.Equal(t, "Adaeze Okafor", profile.FullName())
}
