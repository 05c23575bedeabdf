// Package contact records contact form submissions.
package contact

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/valpere/pereweb/internal"
)

// Acknowledgement confirms a submission was recorded.
type Acknowledgement struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Saver persists accepted submissions. The SQLite store satisfies it;
// a nil Saver means log-only operation.
type Saver interface {
	SaveContact(ctx context.Context, sub internal.ContactSubmission) error
}

// Recorder accepts contact submissions, writes them to the operational
// log and, when a Saver is configured, persists them.
type Recorder struct {
	logger *log.Logger
	saver  Saver
}

// NewRecorder creates a Recorder. saver may be nil to disable persistence.
func NewRecorder(logger *log.Logger, saver Saver) *Recorder {
	return &Recorder{logger: logger, saver: saver}
}

// Submit validates field presence, records the submission and returns an
// acknowledgement. Presence checks are the only validation performed.
func (r *Recorder) Submit(ctx context.Context, name, email, message string) (*Acknowledgement, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	switch {
	case name == "":
		return nil, fmt.Errorf("name is required")
	case email == "":
		return nil, fmt.Errorf("email is required")
	case message == "":
		return nil, fmt.Errorf("message is required")
	}

	sub := internal.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: time.Now(),
	}

	r.logger.Printf("contact submission id=%s name=%q email=%q message_len=%d",
		sub.ID, sub.Name, sub.Email, len(sub.Message))

	if r.saver != nil {
		if err := r.saver.SaveContact(ctx, sub); err != nil {
			// The submission is already logged; persistence failure does
			// not fail the request.
			r.logger.Printf("contact persistence failed id=%s: %v", sub.ID, err)
		}
	}

	return &Acknowledgement{ID: sub.ID, ReceivedAt: sub.Timestamp}, nil
}
