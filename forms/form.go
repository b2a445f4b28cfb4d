// Package forms holds the state and submission flow shared by the site's forms:
// the mission sign-up, the contact form and the partner application.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrSubmitInProgress = errors.New("submission already in progress")
)

// Fields is implemented by every form payload.
type Fields interface {
	Missing() []string
}

type Submitter[T any] interface {
	Submit(ctx context.Context, v T) error
}

// SubmitterFunc adapts a plain function to a Submitter.
type SubmitterFunc[T any] func(ctx context.Context, v T) error

func (f SubmitterFunc[T]) Submit(ctx context.Context, v T) error {
	return f(ctx, v)
}

// Form is the controlled state of one form instance.
type Form[T Fields] struct {
	mu         sync.Mutex
	fields     T
	submitter  Submitter[T]
	messages   Messages
	resetDelay time.Duration
	loading    bool
	submitted  bool
	resetTimer *time.Timer
}

func New[T Fields](submitter Submitter[T], messages Messages, resetDelay time.Duration) *Form[T] {
	return &Form[T]{
		submitter:  submitter,
		messages:   messages,
		resetDelay: resetDelay,
	}
}

// Set replaces the whole field state.
func (f *Form[T]) Set(v T) {
	f.mu.Lock()
	f.fields = v
	f.mu.Unlock()
}

// Update applies one change, the equivalent of a keystroke in a single field.
func (f *Form[T]) Update(change func(*T)) {
	f.mu.Lock()
	change(&f.fields)
	f.mu.Unlock()
}

func (f *Form[T]) Fields() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form[T]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Submitted is true between a successful submit and the end of the reset delay.
func (f *Form[T]) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Submit validates the fields and hands them to the submitter. The returned notice
// is always set; the error is nil only on success.
func (f *Form[T]) Submit(ctx context.Context) (Notice, error) {
	f.mu.Lock()
	if missing := f.fields.Missing(); len(missing) > 0 {
		f.mu.Unlock()
		return f.messages.Validation, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	if f.loading {
		f.mu.Unlock()
		return f.messages.Failure, ErrSubmitInProgress
	}
	f.loading = true
	payload := f.fields
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		return f.messages.Failure, fmt.Errorf("submit: %w", err)
	}

	var zero T
	f.fields = zero
	f.submitted = true
	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetTimer = time.AfterFunc(f.resetDelay, func() {
		f.mu.Lock()
		f.submitted = false
		f.mu.Unlock()
	})
	return f.messages.Success, nil
}

// Close stops a pending success reset. The form stays usable.
func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}
