// Package model defines the domain types shared across the application.
package model

import (
	"fmt"
	"time"
)

// Status tracks how far a posting has moved through the lifecycle:
//
//	new ──► sent ──► contacted ──► emailed
//
// Transitions are trigger-driven: sent after the notification fan-out,
// contacted when an outreach template is requested, emailed when an
// outreach email is confirmed delivered. SavedBy is orthogonal and can
// be set in any state.
type Status string

const (
	StatusNew       Status = "new"
	StatusSent      Status = "sent"
	StatusContacted Status = "contacted"
	StatusEmailed   Status = "emailed"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusNew, StatusSent, StatusContacted, StatusEmailed:
		return st, nil
	}
	return "", fmt.Errorf("unknown posting status %q", s)
}

// JobPosting is a single job listing. Link is the identity: two items
// with the same link are the same posting, whatever the other fields say.
type JobPosting struct {
	ID        int64
	Source    string
	Title     string
	Company   string
	Link      string
	Excerpt   string
	Tags      string // comma-joined, taxonomy order
	PostedAt  string // feed-supplied, kept verbatim
	Score     float64
	Status    Status
	SavedBy   *int64 // subscriber ID, nil when unsaved
	CreatedAt time.Time
}

// Subscriber is a notification recipient, keyed by their Telegram chat ID.
type Subscriber struct {
	ID                 int64
	ExternalID         int64
	Portfolio          string
	KeywordPreferences string
	Frequency          string // stored only; delivery does not consult it
}
