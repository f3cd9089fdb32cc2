package domain

import "strings"

// ItemStatus represents the lifecycle state of a provisioning item build.
type ItemStatus string

const (
	// ItemStatusPending indicates the item is waiting for a build slot.
	ItemStatusPending ItemStatus = "pending"
	// ItemStatusRunning indicates the item is being built or archived.
	ItemStatusRunning ItemStatus = "running"
	// ItemStatusCompleted indicates the item archive was produced.
	ItemStatusCompleted ItemStatus = "completed"
	// ItemStatusFailed indicates the item build failed.
	ItemStatusFailed ItemStatus = "failed"
	// ItemStatusAborted indicates the item build was abandoned because another item failed.
	ItemStatusAborted ItemStatus = "aborted"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// IsTerminal checks if a status is a terminal state.
func (s ItemStatus) IsTerminal() bool {
	switch s {
	case ItemStatusCompleted, ItemStatusFailed, ItemStatusAborted:
		return true
	default:
		return false
	}
}

// NormalizeItemStatus converts a string to an ItemStatus, defaulting to pending if unknown.
func NormalizeItemStatus(s string) ItemStatus {
	switch strings.ToLower(s) {
	case string(ItemStatusPending):
		return ItemStatusPending
	case string(ItemStatusRunning):
		return ItemStatusRunning
	case string(ItemStatusCompleted):
		return ItemStatusCompleted
	case string(ItemStatusFailed):
		return ItemStatusFailed
	case string(ItemStatusAborted):
		return ItemStatusAborted
	default:
		return ItemStatusPending
	}
}
