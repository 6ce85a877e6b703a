package domain

// Outcome distinguishes an operation that changed something from one that
// found nothing to do. Failures are reported through errors.
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeNoOp
)

func (o Outcome) String() string {
	if o == OutcomeNoOp {
		return "no-op"
	}
	return "done"
}
