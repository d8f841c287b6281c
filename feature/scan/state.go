package scan

// State is the lifecycle state of a scan session.
type State int

const (
	// StateIdle means no scan is running. Scanned items may be retained
	// from a stopped scan until the session is finished.
	StateIdle State = iota
	// StateActive means tag events are being collected.
	StateActive
	// StateFinalizing means the scanned set is being reconciled.
	StateFinalizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
