// Package poller runs the ingestion pipeline: fetch every configured feed,
// extract items, tag and score them, admit what scores above zero, insert
// new postings and fan them out to subscribers.
package poller

import (
	"context"
	"log"
	"sync"

	"go-gigradar/internal/feed"
	"go-gigradar/internal/filter"
	"go-gigradar/internal/model"
	"go-gigradar/internal/notify"
	"go-gigradar/internal/store"
)

// Fetcher retrieves one feed's raw document, returning "" on any failure.
type Fetcher interface {
	Fetch(ctx context.Context, sourceURL string) string
}

// Poller bundles everything one poll cycle needs. No package-level state:
// tests run isolated instances side by side.
type Poller struct {
	store       *store.Store
	fetcher     Fetcher
	notifier    notify.Notifier
	feeds       []string
	keywords    []string
	ownerChatID int64

	inFlight sync.Mutex // guards against overlapping cycles
}

func New(st *store.Store, fetcher Fetcher, notifier notify.Notifier, feeds, keywords []string, ownerChatID int64) *Poller {
	return &Poller{
		store:       st,
		fetcher:     fetcher,
		notifier:    notifier,
		feeds:       feeds,
		keywords:    keywords,
		ownerChatID: ownerChatID,
	}
}

// RunCycle polls every feed once. A second trigger while a cycle is still
// in flight returns immediately: the scheduler tick and the manual "poll
// now" action would otherwise interleave writes against the same store.
func (p *Poller) RunCycle(ctx context.Context) {
	if !p.inFlight.TryLock() {
		log.Println("[poller] cycle already in flight; skipping")
		return
	}
	defer p.inFlight.Unlock()

	var seen, accepted, known int
	for _, source := range p.feeds {
		raw := p.fetcher.Fetch(ctx, source)
		items := feed.ParseItems(raw)
		seen += len(items)

		for _, item := range items {
			// link is the identity; nothing to dedup against without one
			if item.Link == "" {
				continue
			}

			tags := filter.JoinTags(filter.DetectTags(item.Title + " " + item.Description))
			score := filter.Score(item.Title, item.Description, tags, p.keywords)
			if score <= 0 {
				continue
			}

			job, err := p.store.InsertIfNew(source, item.Title, "", item.Link, item.Description, tags, item.PublishedAt, score)
			if err != nil {
				// treat a failed write like nothing new; the cycle goes on
				log.Printf("[poller] insert failed for %s: %v", item.Link, err)
				continue
			}
			if job == nil {
				known++
				continue
			}

			accepted++
			p.dispatch(job)
		}
	}

	log.Printf("[poller] cycle done: %d feed(s), %d item(s) seen, %d accepted, %d already known",
		len(p.feeds), seen, accepted, known)
}

// dispatch fans one fresh posting out to every subscriber plus the owner,
// each delivery attempted independently, then marks the posting sent.
// The sent transition is unconditional: a posting is "sent" once its
// fan-out ran, even if every single delivery failed.
func (p *Poller) dispatch(job *model.JobPosting) {
	for _, recipient := range p.recipients() {
		if err := p.notifier.Deliver(job, recipient); err != nil {
			log.Printf("[poller] delivery of job %d to %d failed: %v", job.ID, recipient, err)
		}
	}

	if err := p.store.UpdateStatus(job.ID, model.StatusSent); err != nil {
		log.Printf("[poller] marking job %d sent failed: %v", job.ID, err)
	}
}

// recipients is all subscriber chat IDs plus the owner, deduplicated,
// subscribers first in store order.
func (p *Poller) recipients() []int64 {
	subs, err := p.store.ListSubscribers()
	if err != nil {
		log.Printf("[poller] listing subscribers failed: %v", err)
	}

	recipients := make([]int64, 0, len(subs)+1)
	seen := make(map[int64]bool, len(subs)+1)
	for _, sub := range subs {
		if !seen[sub.ExternalID] {
			seen[sub.ExternalID] = true
			recipients = append(recipients, sub.ExternalID)
		}
	}
	if !seen[p.ownerChatID] {
		recipients = append(recipients, p.ownerChatID)
	}
	return recipients
}
