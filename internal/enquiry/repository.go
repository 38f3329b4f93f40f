package enquiry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Submission is a recorded enquiry with its audit metadata.
type Submission struct {
	ID string `json:"id"`
	Enquiry
	ReceivedAt time.Time `json:"received_at"`
}

// Recorder stores normalized submissions for observability. Recording always
// happens before a delivery attempt so an audit trail exists even when the
// email provider fails.
type Recorder interface {
	Record(ctx context.Context, e Enquiry) (*Submission, error)
}

// MemoryRecorder keeps submissions in memory for the lifetime of the process.
type MemoryRecorder struct {
	mu   sync.RWMutex
	subs []*Submission
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record stores e with a fresh id and UTC timestamp.
func (r *MemoryRecorder) Record(ctx context.Context, e Enquiry) (*Submission, error) {
	sub := &Submission{
		ID:         uuid.New().String(),
		Enquiry:    e,
		ReceivedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	return sub, nil
}

// Recent returns up to n of the most recently recorded submissions, oldest
// first.
func (r *MemoryRecorder) Recent(n int) []*Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > len(r.subs) {
		n = len(r.subs)
	}
	out := make([]*Submission, n)
	copy(out, r.subs[len(r.subs)-n:])
	return out
}
