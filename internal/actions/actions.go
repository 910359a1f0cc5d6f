// Package actions is the interactive surface: each operation is a thin
// wrapper over one or two core store/outreach/mailer calls. Command parsing
// and keyboard rendering live with the chat front end, not here.
package actions

import (
	"errors"
	"fmt"

	"go-gigradar/internal/mailer"
	"go-gigradar/internal/model"
	"go-gigradar/internal/outreach"
	"go-gigradar/internal/store"
)

// ContactOptions is the snapshot returned when a user asks how to reach
// a posting's company.
type ContactOptions struct {
	Link    string
	Company string
	Title   string
}

// Actions bundles the store and collaborators so operations share no
// global state.
type Actions struct {
	store  *store.Store
	mailer mailer.EmailSender
	//outreach identity from configuration
	requesterName string
	skills        []string
	portfolioURL  string
}

func New(st *store.Store, sender mailer.EmailSender, requesterName string, skills []string, portfolioURL string) *Actions {
	return &Actions{
		store:         st,
		mailer:        sender,
		requesterName: requesterName,
		skills:        skills,
		portfolioURL:  portfolioURL,
	}
}

// Subscribe registers a chat as a notification recipient. Idempotent.
func (a *Actions) Subscribe(externalID int64) (*model.Subscriber, error) {
	return a.store.GetOrCreateSubscriber(externalID)
}

// ListNewest returns the latest accepted postings.
func (a *Actions) ListNewest(limit int) ([]model.JobPosting, error) {
	if limit <= 0 {
		limit = 10
	}
	return a.store.ListNewest(limit)
}

// ListSaved returns the postings a subscriber has saved.
func (a *Actions) ListSaved(subscriberID int64) ([]model.JobPosting, error) {
	return a.store.ListByOwner(subscriberID)
}

// Save marks a posting saved by a subscriber.
func (a *Actions) Save(jobID, subscriberID int64) error {
	return a.store.SetSavedBy(jobID, subscriberID)
}

// RequestOutreach builds a contact message for a posting and moves it to
// contacted.
func (a *Actions) RequestOutreach(jobID int64, requesterName string) (string, error) {
	job, err := a.store.GetByID(jobID)
	if err != nil {
		return "", err
	}

	if requesterName == "" {
		requesterName = a.requesterName
	}
	template := outreach.BuildTemplate(job, requesterName, a.skills, a.portfolioURL)

	if err := a.store.UpdateStatus(jobID, model.StatusContacted); err != nil {
		return "", err
	}
	return template, nil
}

// RequestContactOptions returns how to reach a posting's company without
// touching its status.
func (a *Actions) RequestContactOptions(jobID int64) (*ContactOptions, error) {
	job, err := a.store.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	return &ContactOptions{Link: job.Link, Company: job.Company, Title: job.Title}, nil
}

// SendOutreachEmail emails the outreach message for a posting. The posting
// only advances to emailed on confirmed success; a configuration problem
// (no provider credentials) is reported as such, never attempted silently.
func (a *Actions) SendOutreachEmail(jobID int64, targetAddress string) error {
	job, err := a.store.GetByID(jobID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Regarding: %s", job.Title)
	if job.Title == "" {
		subject = "Regarding your job posting"
	}
	body := outreach.BuildTemplate(job, a.requesterName, a.skills, a.portfolioURL)

	if err := a.mailer.Send(targetAddress, subject, body); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return fmt.Errorf("cannot email for job %d: %w", jobID, err)
		}
		return fmt.Errorf("sending outreach email for job %d: %w", jobID, err)
	}

	return a.store.UpdateStatus(jobID, model.StatusEmailed)
}

// SetPortfolio updates a subscriber's portfolio URL.
func (a *Actions) SetPortfolio(externalID int64, url string) error {
	return a.store.SetPortfolio(externalID, url)
}

// SetKeywords stores a subscriber's keyword preferences. Display only;
// delivery ignores them.
func (a *Actions) SetKeywords(externalID int64, keywords string) error {
	return a.store.SetKeywordPreferences(externalID, keywords)
}
