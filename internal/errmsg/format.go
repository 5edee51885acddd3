// Package errmsg provides the error taxonomy of the dispatch core and
// consistent formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Dispatch operations
	OpHandleEvent  Op = "handle event"
	OpUpdate       Op = "apply action"
	OpRegister     Op = "register component"
	OpFocus        Op = "move focus"
	OpCascade      Op = "dispatch action cascade"
	OpValidateKeys Op = "validate event"

	// Library operations
	OpLibraryList Op = "list directory"
	OpTagsRead    Op = "read file tags"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Session operations
	OpSessionOpen Op = "open session store"
	OpSessionLoad Op = "restore session"
	OpSessionSave Op = "save session"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Message returns the user-facing line for err. Errors built with Wrap carry
// their own operation and component; anything else is printed as-is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return FormatWith(e.Op, e.Component, e.Err)
	}
	return err.Error()
}
