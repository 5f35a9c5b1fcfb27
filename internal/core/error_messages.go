package core

// error_messages.go maps technical errors to user-facing messages with a
// support code.
//
// # File Errors (FILE001-FILE099)
//
//	FILE002 - Invalid CSV: The movie file could not be read as text lines
//	          Action: Ensure the file is plain comma-separated text
//	          Patterns: "invalid csv"
//
//	FILE005 - Empty dataset: The movie file has no data rows
//	          Action: Add at least one movie line below the header
//	          Sentinel: ErrEmptyDataset
//
//	FILE006 - Not found: The movie file does not exist
//	          Action: Check the DATA_PATH setting
//	          Sentinel: ErrNotFound
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Invalid count: The count parameter is not a non-negative integer
//	         Action: Pass count as a whole number, e.g. ?count=5
//	         Patterns: "invalid count"
//
//	REQ002 - Request timeout: The request did not finish in time
//	         Action: Please try again
//	         Patterns: "context deadline exceeded"
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Check the application log for the original error.
//
// Sentinels are checked with errors.Is before any text pattern, and text
// patterns are matched case-insensitively; the first match wins.

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCount is returned when a caller supplies a count that is not a
// non-negative integer.
var ErrInvalidCount = errors.New("invalid count")

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type sentinelMessage struct {
	target error
	msg    UserMessage
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var sentinelMessages = []sentinelMessage{
	{
		target: ErrNotFound,
		msg: UserMessage{
			Message: "The movie file does not exist",
			Action:  "Check the DATA_PATH setting",
			Code:    "FILE006",
		},
	},
	{
		target: ErrEmptyDataset,
		msg: UserMessage{
			Message: "The movie file has no data rows",
			Action:  "Add at least one movie line below the header",
			Code:    "FILE005",
		},
	},
	{
		target: ErrInvalidCount,
		msg: UserMessage{
			Message: "The count parameter must be a non-negative whole number",
			Action:  "Pass count as a whole number, e.g. ?count=5",
			Code:    "REQ001",
		},
	},
}

var errorPatterns = []errorPattern{
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "The movie file could not be read",
			Action:  "Ensure the file is plain comma-separated text",
			Code:    "FILE002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or check the application log",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// A nil error maps to the zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.target) {
			return sm.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
