package crud

import "time"

// Lifecycle events published on the application event bus around every
// dispatch. Subscribers (views, loggers) observe them; nothing in this
// package depends on anyone listening.

type OperationStarted struct {
	Operation string
	At        time.Time
}

type OperationSucceeded struct {
	Operation string
	At        time.Time
}

type OperationFailed struct {
	Operation string
	Err       error
	At        time.Time
}
