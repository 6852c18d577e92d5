package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// ViewMode selects which presentation of the current plan is active
type ViewMode int

// Severity classifies a transient notification
type Severity string

const (
	AppName           = "studyplan"
	Version           = "v0.2.0"
	DefaultServerURL  = "http://localhost:8000"
	GeneratePlanPath  = "/api/generate-plan"
	DefaultConfigPath = "~/.config/studyplan"

	// DefaultDailyHours is the starting value for the daily study-hours budget
	DefaultDailyHours = 6
	MinDailyHours     = 1
	MaxDailyHours     = 24

	// NotificationDuration is how long a toast stays on screen before
	// auto-dismissing
	NotificationDuration = 6 * time.Second

	// Severities
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Session States. StateForm is the initial state.
const (
	StateForm SessionState = iota
	StatePlan
	StateChapters
	StateEditSubject
	StateEditChapter
	StateEditHours
	StateConfirmReset
)

// View Modes. ViewTable is the default.
const (
	ViewTable ViewMode = iota
	ViewCalendar
)
