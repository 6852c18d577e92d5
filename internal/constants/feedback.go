package constants

// User-facing notification messages. The failure and empty-result texts are
// deliberately generic; service-provided detail strings take precedence when
// present.
const (
	MsgPlanGenerated = "Study plan generated successfully!"
	MsgPlanEmpty     = "No study plan could be generated with the given inputs. Please adjust your schedule."
	MsgPlanFailed    = "Failed to generate study plan. Please check your connection and try again."
)
