// Package policy holds the address verification outcome policy.
package policy

// Outcome is the verdict attached to a verification record.
type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomePending  Outcome = "pending"
	OutcomeRejected Outcome = "rejected"
)

// Thresholds, in meters. The band between ApprovalDistanceMeters and RejectionDistanceMeters is the
// manual review zone and always yields OutcomePending.
const (
	ApprovalDistanceMeters  = 50.0
	ApprovalAccuracyMeters  = 50.0
	RejectionDistanceMeters = 200.0
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeApproved, OutcomePending, OutcomeRejected:
		return true
	default:
		return false
	}
}

// Decide maps the address-to-device distance and the device accuracy to an outcome.
// A nil accuracy is unknown and never satisfies the approval accuracy check.
func Decide(distanceMeters float64, deviceAccuracy *float64) Outcome {
	if distanceMeters <= ApprovalDistanceMeters && accuracyWithin(deviceAccuracy, ApprovalAccuracyMeters) {
		return OutcomeApproved
	}

	if distanceMeters > RejectionDistanceMeters {
		return OutcomeRejected
	}

	return OutcomePending
}

func accuracyWithin(accuracy *float64, limit float64) bool {
	if accuracy == nil {
		return false
	}

	return *accuracy >= 0 && *accuracy <= limit
}
