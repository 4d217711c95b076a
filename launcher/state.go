package launcher

// State is a stage of the launcher lifecycle. Transitions are linear:
// Idle → Starting → Running → ShuttingDown|Failed → Terminated. A failure
// while starting goes straight from Starting to Failed.
type State int32

const (
	Idle State = iota
	Starting
	Running
	ShuttingDown
	Failed
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Failed:
		return "failed"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
