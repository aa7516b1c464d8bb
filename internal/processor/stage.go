package processor

// Stage is a step of the per-item state machine. Items only move forward.
type Stage int

const (
	StagePending Stage = iota
	StageResolving
	StageChunking
	StageTranscribing
	StageSummarizing
	StageConvertingAndBackingUp
	StagePublishing
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StagePending:                "pending",
	StageResolving:              "resolving",
	StageChunking:               "chunking",
	StageTranscribing:           "transcribing",
	StageSummarizing:            "summarizing",
	StageConvertingAndBackingUp: "converting_and_backing_up",
	StagePublishing:             "publishing",
	StageDone:                   "done",
	StageFailed:                 "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
