package planner

import (
	"errors"

	"github.com/studyplanhq/studyplan-cli/internal/api"
	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/logger"
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// Phase is the single source of truth for where a plan submission stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseEmpty
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Notification is a one-shot toast, independent of the phase itself.
// Dismissing it never changes the phase. Seq increases with every emitted
// notification so a newer submission supersedes a pending auto-dismiss.
type Notification struct {
	Message  string
	Severity constants.Severity
	Seq      int
}

// Lifecycle coordinates one submission at a time: Idle -> Loading -> one of
// Succeeded/Empty/Failed, then back through Loading on the next Begin. It
// also holds the latest successful plan, cleared on Empty and Failed.
type Lifecycle struct {
	phase  Phase
	plan   *models.StudyPlanResponse
	errMsg string
	note   *Notification
	seq    int
}

// NewLifecycle returns a lifecycle in the Idle phase.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase {
	return l.phase
}

// Loading reports whether a submission is in flight.
func (l *Lifecycle) Loading() bool {
	return l.phase == PhaseLoading
}

// Plan returns the latest successful plan, or nil when none is held.
func (l *Lifecycle) Plan() *models.StudyPlanResponse {
	return l.plan
}

// ErrMessage returns the message of the last failure, empty otherwise.
func (l *Lifecycle) ErrMessage() string {
	return l.errMsg
}

// Notification returns the pending toast, or nil.
func (l *Lifecycle) Notification() *Notification {
	return l.note
}

// DismissNotification clears the toast if it still carries the given
// sequence number. Only the transient half is touched; phase and plan are
// untouched. A stale seq (superseded by a newer submission) is ignored.
func (l *Lifecycle) DismissNotification(seq int) {
	if l.note != nil && l.note.Seq == seq {
		l.note = nil
	}
}

func (l *Lifecycle) notify(message string, severity constants.Severity) {
	l.seq++
	l.note = &Notification{Message: message, Severity: severity, Seq: l.seq}
}

// Begin starts a submission. It returns false when one is already in flight;
// otherwise it enters Loading and clears any previously surfaced error text.
func (l *Lifecycle) Begin() bool {
	if l.phase == PhaseLoading {
		return false
	}
	l.phase = PhaseLoading
	l.errMsg = ""
	return true
}

// Reject surfaces a client-side validation rejection (such as duplicate
// subject names) without entering Loading. The held plan and phase are left
// alone; only an error toast is emitted.
func (l *Lifecycle) Reject(message string) {
	l.notify(message, constants.SeverityError)
}

// Resolve terminates the in-flight submission exactly once. A transport or
// service failure lands in Failed with the service detail when present and a
// generic connectivity message otherwise. A response with no days lands in
// Empty. Anything else is Succeeded. Empty and Failed both clear any
// previously displayed plan.
func (l *Lifecycle) Resolve(resp *models.StudyPlanResponse, err error) {
	if l.phase != PhaseLoading {
		logger.Warn("Resolve called outside of a submission", "phase", l.phase)
		return
	}

	if err != nil {
		msg := constants.MsgPlanFailed
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.Detail != "" {
			msg = statusErr.Detail
		}
		logger.Error("Plan submission failed", "error", err)
		l.phase = PhaseFailed
		l.errMsg = msg
		l.plan = nil
		l.notify(msg, constants.SeverityError)
		return
	}

	if resp == nil || len(resp.DailyPlans) == 0 {
		l.phase = PhaseEmpty
		l.plan = nil
		l.notify(constants.MsgPlanEmpty, constants.SeverityInfo)
		return
	}

	logger.Info("Plan received", "days", resp.TotalDays, "hours", resp.TotalHours)
	l.phase = PhaseSucceeded
	l.plan = resp
	l.notify(constants.MsgPlanGenerated, constants.SeveritySuccess)
}
