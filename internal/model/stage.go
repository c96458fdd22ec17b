package model

// ProcessorState represents the processor stage's position in its
// state machine.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output for logging.
type ProcessorState int

const (
	// ProcessorWaitingForSource means the processor is polling for the
	// upstream fetch marker. There is no timeout: a hung upstream blocks
	// the stage forever, which is the intended liveness trade-off.
	ProcessorWaitingForSource ProcessorState = iota

	// ProcessorProcessing means the raw input scan is in progress.
	ProcessorProcessing

	// ProcessorDone means all records and the completion marker are
	// written and the stage is about to exit.
	ProcessorDone
)

// String returns a human-readable representation of the processor state.
func (s ProcessorState) String() string {
	switch s {
	case ProcessorWaitingForSource:
		return "WAITING_FOR_SOURCE"
	case ProcessorProcessing:
		return "PROCESSING"
	case ProcessorDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// AnalyzerState represents the analyzer stage's position in its
// state machine.
type AnalyzerState int

const (
	// AnalyzerWaitingForProcessor means the analyzer is polling for the
	// processor's completion marker.
	AnalyzerWaitingForProcessor AnalyzerState = iota

	// AnalyzerLoading means processed records are being read.
	AnalyzerLoading

	// AnalyzerAggregating means corpus statistics are being computed.
	AnalyzerAggregating

	// AnalyzerReported means the report and the analyzer's own marker
	// are written.
	AnalyzerReported

	// AnalyzerLingering means the process is held alive for a bounded
	// interval so an external monitor can observe completion.
	AnalyzerLingering

	// AnalyzerExit means the stage is done.
	AnalyzerExit
)

// String returns a human-readable representation of the analyzer state.
func (s AnalyzerState) String() string {
	switch s {
	case AnalyzerWaitingForProcessor:
		return "WAITING_FOR_PROCESSOR"
	case AnalyzerLoading:
		return "LOADING"
	case AnalyzerAggregating:
		return "AGGREGATING"
	case AnalyzerReported:
		return "REPORTED"
	case AnalyzerLingering:
		return "LINGERING"
	case AnalyzerExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}
