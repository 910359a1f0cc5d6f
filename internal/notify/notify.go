// Package notify delivers postings and plain messages to subscribers.
package notify

import "go-gigradar/internal/model"

// Notifier is the delivery channel for accepted postings. A failed Deliver
// is the recipient's problem alone: the dispatcher logs it and moves on.
type Notifier interface {
	Deliver(posting *model.JobPosting, recipient int64) error
}
