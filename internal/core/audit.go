package core

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of lifecycle action being audited.
type AuditAction string

const (
	ActionSubmit         AuditAction = "submit"
	ActionSubmitRejected AuditAction = "submit_rejected"
	ActionApprove        AuditAction = "approve"
	ActionReject         AuditAction = "reject"
)

// AuditEntry records one lifecycle action. Rejected intakes are recorded
// here even though no submission is persisted for them, so the history of a
// rejection is never lost.
type AuditEntry struct {
	ID           string      `json:"id"`
	Action       AuditAction `json:"action"`
	SubmissionID int64       `json:"submission_id,omitempty"` // zero for rejected intakes
	ActorID      string      `json:"actor_id"`
	ActorName    string      `json:"actor_name,omitempty"`
	CustomerID   string      `json:"customer_id,omitempty"`
	Status       Status      `json:"status,omitempty"`
	Reason       string      `json:"reason,omitempty"`
	IPAddress    string      `json:"ip_address,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// AuditLog is an append-only, in-memory trail of lifecycle actions.
type AuditLog struct {
	mu      sync.Mutex
	entries []AuditEntry
}

// NewAuditLog creates an empty audit log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Record appends an entry, assigning it an ID and timestamp.
func (l *AuditLog) Record(ctx context.Context, now time.Time, e AuditEntry) AuditEntry {
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.IPAddress = IPAddressFromContext(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	return e
}

// Entries returns a copy of the trail, newest first.
func (l *AuditLog) Entries() []AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]AuditEntry, len(l.entries))
	copy(result, l.entries)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Len returns the number of recorded entries.
func (l *AuditLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
