package service

// Transition outcomes recorded by MetricsRecorder.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected" // Domain rule refused the transition.
	OutcomeExpired  = "expired"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// MetricsRecorder receives business metrics from the use cases.
type MetricsRecorder interface {
	ObserveTransition(transition, outcome string)
	ObserveSweep(expired int64, err error)
	ObserveNotification(channel string, err error)
	ObserveEvent(eventType string, err error)
}
