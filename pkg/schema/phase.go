package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Phase is the lifecycle stage of a query resource.
type Phase string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	PhasePending  Phase = "pending"
	PhaseRunning  Phase = "running"
	PhaseDone     Phase = "done"
	PhaseError    Phase = "error"
	PhaseCanceled Phase = "canceled"
	PhaseUnknown  Phase = "unknown"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParsePhase maps a raw phase string onto a known phase. Unrecognised
// values map to PhaseUnknown.
func ParsePhase(v string) Phase {
	switch Phase(v) {
	case PhasePending, PhaseRunning, PhaseDone, PhaseError, PhaseCanceled:
		return Phase(v)
	}
	return PhaseUnknown
}

// Terminal returns true when no further phase change is expected.
// The unknown phase is treated as terminal.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseDone, PhaseError, PhaseCanceled, PhaseUnknown:
		return true
	}
	return false
}

func (p Phase) String() string {
	return string(p)
}
