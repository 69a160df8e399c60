package queue

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pgmanager/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// Kind names a UI action
type Kind string

const (
	BookingApprove   Kind = "booking.approve"
	BookingReject    Kind = "booking.reject"
	ComplaintSubmit  Kind = "complaint.submit"
	ComplaintResolve Kind = "complaint.resolve"
	PaymentMake      Kind = "payment.make"
	ExpenseAdd       Kind = "expense.add"
	PropertyAdd      Kind = "property.add"
	PropertyEdit     Kind = "property.edit"
	PropertyDelete   Kind = "property.delete"
)

// Action is a fire-and-forget request from a view. Nothing consumes it
// beyond the subscribers; the data set never changes.
type Action struct {
	ID      string      `json:"id"`
	Kind    Kind        `json:"kind"`
	Role    models.Role `json:"role"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

// NewAction stamps an action with a fresh id and the current time
func NewAction(kind Kind, role models.Role, payload interface{}) Action {
	return Action{
		ID:      uuid.NewString(),
		Kind:    kind,
		Role:    role,
		Payload: payload,
		At:      time.Now().UTC(),
	}
}

// ActionQueue represents an in-memory queue of UI actions
type ActionQueue struct {
	items    chan Action
	done     chan struct{}
	stopped  chan struct{}
	maxSize  int
	closed   bool
	started  bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func(Action) error
}

// NewActionQueue creates a new action queue with the specified buffer size
func NewActionQueue(bufferSize int, logger *logrus.Logger) *ActionQueue {
	if logger == nil {
		logger = logrus.New()
	}
	return &ActionQueue{
		items:    make(chan Action, bufferSize),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]func(Action) error, 0),
	}
}

// Push adds an action to the queue without blocking
func (q *ActionQueue) Push(action Action) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- action:
		q.logger.WithFields(logrus.Fields{
			"action_id": action.ID,
			"kind":      action.Kind,
		}).Debug("Pushed action to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each action
func (q *ActionQueue) Subscribe(handler func(Action) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue. Calling it twice is a no-op.
func (q *ActionQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started || q.closed {
		return
	}
	q.started = true
	go q.process()
}

// process handles the queue processing loop
func (q *ActionQueue) process() {
	defer close(q.stopped)
	for {
		select {
		case <-q.done:
			// deliver what was already accepted before stopping
			for {
				select {
				case action := <-q.items:
					q.dispatch(action)
				default:
					return
				}
			}
		case action := <-q.items:
			q.dispatch(action)
		}
	}
}

// dispatch sends the action to all subscribed handlers
func (q *ActionQueue) dispatch(action Action) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(action); err != nil {
			q.logger.WithError(err).WithField("action_id", action.ID).Error("Handler failed to process action")
		}
	}
}

// Close stops the queue and prevents new items from being added. Actions
// already accepted are delivered before Close returns.
func (q *ActionQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	started := q.started
	close(q.done)
	q.mu.Unlock()

	if started {
		<-q.stopped
	}
	return nil
}

// Len returns the current number of actions waiting in the queue
func (q *ActionQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed
func (q *ActionQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
