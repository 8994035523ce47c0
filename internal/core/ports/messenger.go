package ports

import "context"

// Messenger delivers a single outbound message. Template formatting and
// provider details stay behind this interface.
type Messenger interface {
	Send(ctx context.Context, to, body string) error
}

// CheckInJob is one pending check-in delivery handed to the job queue.
type CheckInJob struct {
	ID    string
	Phone string
	Body  string
}

// JobQueue accepts check-in jobs for asynchronous delivery. Jobs for the
// same phone number are delivered in enqueue order.
type JobQueue interface {
	Enqueue(job CheckInJob)
}
