package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationRecordModel is the GORM-specific struct for the 'verification_records' table.
// Rows are only ever inserted.
type VerificationRecordModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	SubjectID      string    `gorm:"type:varchar(64);not null;index:idx_verification_subject_created,priority:1"`
	InputAddress   string    `gorm:"type:text;not null"`
	AddressLat     float64   `gorm:"type:double precision;not null"`
	AddressLng     float64   `gorm:"type:double precision;not null"`
	DeviceLat      float64   `gorm:"type:double precision;not null"`
	DeviceLng      float64   `gorm:"type:double precision;not null"`
	DeviceAccuracy *float64  `gorm:"type:double precision"`
	PanoramaLat    float64   `gorm:"type:double precision;not null"`
	PanoramaLng    float64   `gorm:"type:double precision;not null"`
	PanoramaFound  bool      `gorm:"not null;default:false"`
	Heading        float64   `gorm:"type:double precision;not null"`
	DistanceMeters float64   `gorm:"type:double precision;not null"`
	ImageURL       string    `gorm:"type:text;not null"`
	Outcome        string    `gorm:"type:varchar(16);not null;check:outcome IN ('approved','pending','rejected')"`
	CreatedAt      time.Time `gorm:"not null;index:idx_verification_subject_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationRecordModel) TableName() string {
	return "verification_records"
}
