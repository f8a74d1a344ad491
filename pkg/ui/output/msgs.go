package output

// Line formats for a linking pass
const (
	MsgLinked       = "  %s => %s\n"
	MsgReplaced     = "  %s => %s %s\n"
	MsgExists       = "  %s exists. Skipping.\n"
	MsgPlanned      = "  would link %s => %s\n"
	MsgPlannedSwap  = "  would link %s => %s %s\n"
	MsgLinkFailed   = "  %s %s\n"
	MsgItemError    = "  %s %s\n"
	MsgDone         = "  done.\n"
	MsgSummary      = "  %s\n"
	MsgFatal        = "%s %s\n"
	MsgErrorLabel   = "error:"
	MsgReplacedNote = "(replaced)"
	MsgReplacesNote = "(replaces existing)"
)
