package aggregator

import "go.uber.org/zap"

// State is the lifecycle of one aggregation call.
type State int

const (
	Pending State = iota
	Running
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// run tracks one call's state transitions in the logs.
type run struct {
	company string
	state   State
	log     *zap.Logger
}

func newRun(company string, log *zap.Logger) *run {
	return &run{company: company, state: Pending, log: log}
}

func (r *run) transition(next State) {
	r.log.Debug("aggregation state",
		zap.String("company", r.company),
		zap.Stringer("from", r.state),
		zap.Stringer("to", next),
	)
	r.state = next
}
