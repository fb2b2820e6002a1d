// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BackoffUnit is the base of the retry delay: attempt n waits 2^n units.
const BackoffUnit = time.Minute

// 2^20 minutes still fits in a time.Duration.
const maxBackoffExponent = 20

// Error messages recorded on queue entries.
const (
	ReasonNoActiveTokens   = "no active tokens"
	ReasonCategoryDisabled = "category disabled"
	ReasonProcessingStale  = "processing timed out"
	ReasonAdminCancelled   = "cancelled by admin"
	ReasonAllTokensFailed  = "all tokens failed"
)

var (
	// ErrInvalidTransition is returned when a queue entry cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid queue entry transition")
	// ErrInvalidPriority is returned when a priority name is unknown.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidStatus is returned when a status name is unknown.
	ErrInvalidStatus = errors.New("invalid queue status")
	// ErrInvalidPayloadData is returned when payload data holds a non-primitive value.
	ErrInvalidPayloadData = errors.New("payload data values must be strings, numbers or booleans")
)

// Priority orders due entries. Higher values are served first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityNormal: "normal",
	PriorityHigh:   "high",
	PriorityUrgent: "urgent",
}

// ParsePriority converts a priority name into a Priority. Empty means normal.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	for p, name := range priorityNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}

	return PriorityNormal, errors.Wrap(ErrInvalidPriority, s)
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}

	return "priority(" + strconv.Itoa(int(p)) + ")"
}

// IsValid reports whether p is one of the four known priorities.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]

	return ok
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// QueueStatus is the lifecycle state of a queue entry.
type QueueStatus string

const (
	QueueStatusPending    QueueStatus = "pending"
	QueueStatusProcessing QueueStatus = "processing"
	QueueStatusSent       QueueStatus = "sent"
	QueueStatusFailed     QueueStatus = "failed"
	QueueStatusCancelled  QueueStatus = "cancelled"
)

// AllQueueStatuses lists every status in display order.
var AllQueueStatuses = []QueueStatus{
	QueueStatusPending,
	QueueStatusProcessing,
	QueueStatusSent,
	QueueStatusFailed,
	QueueStatusCancelled,
}

// ParseQueueStatus validates a status name.
func ParseQueueStatus(s string) (QueueStatus, error) {
	status := QueueStatus(strings.ToLower(s))
	if !status.IsValid() {
		return "", errors.Wrap(ErrInvalidStatus, s)
	}

	return status, nil
}

func (s QueueStatus) String() string {
	return string(s)
}

func (s QueueStatus) IsValid() bool {
	switch s {
	case QueueStatusPending, QueueStatusProcessing, QueueStatusSent, QueueStatusFailed, QueueStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s QueueStatus) IsTerminal() bool {
	return s == QueueStatusSent || s == QueueStatusFailed || s == QueueStatusCancelled
}

// Payload is the content pushed to devices.
type Payload struct {
	Category string         `json:"category"`
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Data     map[string]any `json:"data,omitempty"`
}

// Validate checks that data values are flat primitives.
func (p Payload) Validate() error {
	for key, value := range p.Data {
		switch value.(type) {
		case string, bool, int, int32, int64, float32, float64, uint, uint32, uint64, nil:
		default:
			return errors.Wrapf(ErrInvalidPayloadData, "key %q", key)
		}
	}

	return nil
}

// FlatData renders data as the string map push gateways accept.
func (p Payload) FlatData() map[string]string {
	if len(p.Data) == 0 {
		return nil
	}

	flat := make(map[string]string, len(p.Data))
	for key, value := range p.Data {
		switch v := value.(type) {
		case string:
			flat[key] = v
		case bool:
			flat[key] = strconv.FormatBool(v)
		case float64:
			flat[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			flat[key] = strconv.FormatFloat(float64(v), 'f', -1, 32)
		case int:
			flat[key] = strconv.Itoa(v)
		case int32:
			flat[key] = strconv.FormatInt(int64(v), 10)
		case int64:
			flat[key] = strconv.FormatInt(v, 10)
		case uint:
			flat[key] = strconv.FormatUint(uint64(v), 10)
		case uint32:
			flat[key] = strconv.FormatUint(uint64(v), 10)
		case uint64:
			flat[key] = strconv.FormatUint(v, 10)
		case nil:
			flat[key] = ""
		}
	}

	return flat
}

// QueueEntry is one durable unit of push work for one user.
type QueueEntry struct {
	ID                  uuid.UUID   `json:"id"`
	UserID              uuid.UUID   `json:"user_id"`
	Payload             Payload     `json:"payload"`
	Priority            Priority    `json:"priority"`
	ScheduledFor        time.Time   `json:"scheduled_for"`
	Status              QueueStatus `json:"status"`
	MaxRetries          int         `json:"max_retries"`
	RetryCount          int         `json:"retry_count"`
	ErrorMessage        string      `json:"error_message,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	ProcessingStartedAt *time.Time  `json:"processing_started_at,omitempty"`
	ProcessedAt         *time.Time  `json:"processed_at,omitempty"`
}

// NewQueueEntry builds a pending entry. A zero scheduledFor means now.
func NewQueueEntry(userID uuid.UUID, payload Payload, priority Priority, scheduledFor time.Time, maxRetries int, now time.Time) *QueueEntry {
	if scheduledFor.IsZero() {
		scheduledFor = now
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &QueueEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Payload:      payload,
		Priority:     priority,
		ScheduledFor: scheduledFor,
		Status:       QueueStatusPending,
		MaxRetries:   maxRetries,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BackoffDelay returns the wait before retry number retryCount.
func BackoffDelay(retryCount int) time.Duration {
	if retryCount < 0 {
		retryCount = 0
	}
	if retryCount > maxBackoffExponent {
		retryCount = maxBackoffExponent
	}

	return time.Duration(1<<retryCount) * BackoffUnit
}

// IsDue reports whether a pending entry may be selected at now.
func (e *QueueEntry) IsDue(now time.Time) bool {
	return e.Status == QueueStatusPending && !e.ScheduledFor.After(now)
}

// Claim moves pending to processing.
func (e *QueueEntry) Claim(now time.Time) error {
	if e.Status != QueueStatusPending {
		return errors.Wrapf(ErrInvalidTransition, "claim from %s", e.Status)
	}
	e.Status = QueueStatusProcessing
	e.ProcessingStartedAt = &now
	e.UpdatedAt = now

	return nil
}

// MarkSent records a delivery where at least one device accepted the push.
func (e *QueueEntry) MarkSent(now time.Time) error {
	if e.Status != QueueStatusProcessing {
		return errors.Wrapf(ErrInvalidTransition, "sent from %s", e.Status)
	}
	e.Status = QueueStatusSent
	e.ErrorMessage = ""
	e.ProcessedAt = &now
	e.UpdatedAt = now

	return nil
}

// RecordFailure applies the retry policy after a failed attempt. It returns the
// backoff delay when the entry goes back to pending, or zero when retries are
// exhausted and the entry is now failed.
func (e *QueueEntry) RecordFailure(now time.Time, reason string) (time.Duration, error) {
	if e.Status != QueueStatusProcessing {
		return 0, errors.Wrapf(ErrInvalidTransition, "failure from %s", e.Status)
	}

	e.ErrorMessage = reason
	e.UpdatedAt = now

	if e.RetryCount >= e.MaxRetries {
		e.Status = QueueStatusFailed
		e.ProcessedAt = &now

		return 0, nil
	}

	e.RetryCount++
	delay := BackoffDelay(e.RetryCount)
	e.Status = QueueStatusPending
	e.ScheduledFor = now.Add(delay)
	e.ProcessingStartedAt = nil

	return delay, nil
}

// Cancel moves a pending or processing entry to cancelled.
func (e *QueueEntry) Cancel(now time.Time, reason string) error {
	if e.Status != QueueStatusPending && e.Status != QueueStatusProcessing {
		return errors.Wrapf(ErrInvalidTransition, "cancel from %s", e.Status)
	}
	e.Status = QueueStatusCancelled
	e.ErrorMessage = reason
	e.ProcessedAt = &now
	e.UpdatedAt = now

	return nil
}

// Attempt is the 1-based number of the delivery attempt currently in flight.
func (e *QueueEntry) Attempt() int {
	return e.RetryCount + 1
}
