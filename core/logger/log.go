package logger

// LogEntry is a single event in the application log. Exactly one of the event
// fields is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart      *SessionStart      `json:"session_start,omitempty"`
	SessionEnd        *SessionEnd        `json:"session_end,omitempty"`
	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	ChangeDirectory   *ChangeDirectory   `json:"change_directory,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
	Interrupt         *Interrupt         `json:"interrupt,omitempty"`
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	setOn(le *LogEntry)
}

// GetLogType returns the event held by the entry, or nil if there is none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.SessionStart != nil:
		return le.SessionStart
	case le.SessionEnd != nil:
		return le.SessionEnd
	case le.RunCommand != nil:
		return le.RunCommand
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.ChangeDirectory != nil:
		return le.ChangeDirectory
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	case le.Interrupt != nil:
		return le.Interrupt
	default:
		return nil
	}
}

// SessionStart is logged when the interactive loop begins.
type SessionStart struct {
	Username string `json:"username"`
	Hostname string `json:"hostname"`
	Dir      string `json:"dir"`
}

func (e *SessionStart) setOn(le *LogEntry) { le.SessionStart = e }

// Reasons a session ends.
const (
	EndExit  = "exit"
	EndEOF   = "eof"
	EndError = "error"
)

// SessionEnd is logged when the interactive loop stops.
type SessionEnd struct {
	Reason string `json:"reason"`
	Error  string `json:"error,omitempty"`
}

func (e *SessionEnd) setOn(le *LogEntry) { le.SessionEnd = e }

// RunCommand is logged for every process started.
type RunCommand struct {
	Command []string `json:"command"`
	// Stage is the zero based position of the command in its pipeline.
	Stage int `json:"stage"`
}

func (e *RunCommand) setOn(le *LogEntry) { le.RunCommand = e }

// UnknownCommand is logged when a process could not be started.
type UnknownCommand struct {
	Command      []string `json:"command"`
	ErrorMessage string   `json:"error_message"`
}

func (e *UnknownCommand) setOn(le *LogEntry) { le.UnknownCommand = e }

// ChangeDirectory is logged after a successful cd.
type ChangeDirectory struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (e *ChangeDirectory) setOn(le *LogEntry) { le.ChangeDirectory = e }

// InvalidInvocation is logged when a builtin fails.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

func (e *InvalidInvocation) setOn(le *LogEntry) { le.InvalidInvocation = e }

// Interrupt is logged when the user interrupts line editing.
type Interrupt struct{}

func (e *Interrupt) setOn(le *LogEntry) { le.Interrupt = e }
