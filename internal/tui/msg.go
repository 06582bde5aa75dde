package tui

// Msg is the sealed interface for all REPL messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgEvaluated is sent when an expression has been evaluated.
type MsgEvaluated struct {
	Err    error
	Input  string
	Result string
}

func (MsgEvaluated) sealed() {}

// MsgCommandRan is sent when a command has been run or rejected.
// Fields are ordered to minimize memory padding.
type MsgCommandRan struct {
	Err       error
	Input     string
	Output    string
	ExitCode  int
	Truncated bool
}

func (MsgCommandRan) sealed() {}
