package domain

// Outcome is the result of one endorsement attempt.
type Outcome uint8

const (
	// OutcomeEndorsed means the target was endorsed.
	OutcomeEndorsed Outcome = iota
	// OutcomeRejected means the site refused the endorsement; the run continues.
	OutcomeRejected
	// OutcomeFailed means the attempt failed in a way that ends the run.
	OutcomeFailed
	// OutcomeExhausted means there was nothing left to endorse.
	OutcomeExhausted
)

// String returns the outcome name used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeEndorsed:
		return "endorsed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Attempt describes one step of the endorsement loop.
type Attempt struct {
	Target  Identifier
	Outcome Outcome
	// Err holds the rejection or failure reason.
	Err error
	// Remaining is the queue length after the attempt.
	Remaining int
}
