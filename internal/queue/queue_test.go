package queue

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgmanager/server/internal/models"
)

func TestNewActionQueue(t *testing.T) {
	logger := logrus.New()
	q := NewActionQueue(10, logger)
	assert.NotNil(t, q)
	assert.Equal(t, 10, q.maxSize)
	assert.False(t, q.IsClosed())
}

func TestNewAction(t *testing.T) {
	a := NewAction(ComplaintSubmit, models.RoleCustomer, map[string]string{"title": "Leak"})
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, ComplaintSubmit, a.Kind)
	assert.Equal(t, models.RoleCustomer, a.Role)
	assert.WithinDuration(t, time.Now(), a.At, time.Minute)

	b := NewAction(ComplaintSubmit, models.RoleCustomer, nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestActionQueue_Push(t *testing.T) {
	logger := logrus.New()
	q := NewActionQueue(2, logger)

	// Test successful push
	err := q.Push(NewAction(ExpenseAdd, models.RoleOwner, nil))
	assert.NoError(t, err)
	assert.Equal(t, 1, q.Len())

	// Test queue full
	_ = q.Push(NewAction(ExpenseAdd, models.RoleOwner, nil))
	err = q.Push(NewAction(ExpenseAdd, models.RoleOwner, nil))
	assert.Equal(t, ErrQueueFull, err)

	// Test closed queue
	q.Close()
	err = q.Push(NewAction(ExpenseAdd, models.RoleOwner, nil))
	assert.Equal(t, ErrQueueClosed, err)
}

func TestActionQueue_Subscribe(t *testing.T) {
	logger := logrus.New()
	q := NewActionQueue(10, logger)

	var processed []Action
	var mu sync.Mutex
	q.Subscribe(func(a Action) error {
		mu.Lock()
		processed = append(processed, a)
		mu.Unlock()
		return nil
	})
	q.Start()

	first := NewAction(BookingApprove, models.RoleOwner, "1")
	second := NewAction(BookingReject, models.RoleOwner, "2")
	require.NoError(t, q.Push(first))
	require.NoError(t, q.Push(second))

	// Close drains accepted actions
	require.NoError(t, q.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, processed, 2)
	assert.Equal(t, first.ID, processed[0].ID)
	assert.Equal(t, second.ID, processed[1].ID)
}

func TestActionQueue_Close(t *testing.T) {
	logger := logrus.New()
	q := NewActionQueue(10, logger)
	q.Start()

	// Test first close
	err := q.Close()
	assert.NoError(t, err)
	assert.True(t, q.IsClosed())

	// Test second close (should be no-op)
	err = q.Close()
	assert.NoError(t, err)
}

func TestActionQueue_HandlerErrorDoesNotStopOthers(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	q := NewActionQueue(10, logger)

	var wg sync.WaitGroup
	calls := 0
	var mu sync.Mutex

	wg.Add(3)
	for i := 0; i < 3; i++ {
		fail := i == 0
		q.Subscribe(func(Action) error {
			mu.Lock()
			calls++
			mu.Unlock()
			wg.Done()
			if fail {
				return errors.New("boom")
			}
			return nil
		})
	}
	q.Start()
	defer q.Close()

	require.NoError(t, q.Push(NewAction(PaymentMake, models.RoleCustomer, nil)))
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 3, calls)
	mu.Unlock()
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	action := NewAction(ComplaintSubmit, models.RoleCustomer, map[string]string{"title": "No water"})
	require.NoError(t, LogHandler(logger)(action))

	out := buf.String()
	assert.Contains(t, out, action.ID)
	assert.Contains(t, out, "complaint.submit")
	assert.Contains(t, out, "not persisted")
}
