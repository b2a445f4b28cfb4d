package forms

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"go-wavecleanup/types"
)

func filledSignup() types.SignupRequest {
	return types.SignupRequest{Name: "Ada", Email: "ada@example.org", Message: "Count me in"}
}

func TestSubmit_MissingFieldBlocksSubmission(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.SignupRequest)
		field  string
	}{
		{name: "missing name", mutate: func(r *types.SignupRequest) { r.Name = "" }, field: "name"},
		{name: "missing email", mutate: func(r *types.SignupRequest) { r.Email = "" }, field: "email"},
		{name: "blank message", mutate: func(r *types.SignupRequest) { r.Message = "   " }, field: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			form := New[types.SignupRequest](SubmitterFunc[types.SignupRequest](func(ctx context.Context, v types.SignupRequest) error {
				atomic.AddInt32(&calls, 1)
				return nil
			}), MissionMessages, time.Second)
			defer form.Close()

			req := filledSignup()
			tt.mutate(&req)
			form.Set(req)

			notice, err := form.Submit(context.Background())

			require.ErrorIs(t, err, ErrMissingFields)
			assert.Contains(t, err.Error(), tt.field)
			assert.Equal(t, MissionMessages.Validation, notice)
			assert.True(t, notice.Destructive())
			assert.Zero(t, atomic.LoadInt32(&calls))
			assert.Equal(t, req, form.Fields())
		})
	}
}

func TestSubmit_SuccessClearsFieldsAndRevertsNotice(t *testing.T) {
	defer goleak.VerifyNone(t)

	var got types.SignupRequest
	form := New[types.SignupRequest](SubmitterFunc[types.SignupRequest](func(ctx context.Context, v types.SignupRequest) error {
		got = v
		return nil
	}), MissionMessages, 20*time.Millisecond)

	form.Update(func(r *types.SignupRequest) { r.Name = "Ada" })
	form.Update(func(r *types.SignupRequest) { r.Email = "ada@example.org" })
	form.Update(func(r *types.SignupRequest) { r.Message = "Count me in" })

	notice, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, MissionMessages.Success, notice)
	assert.Equal(t, filledSignup(), got)
	assert.Equal(t, types.SignupRequest{}, form.Fields())
	assert.True(t, form.Submitted())
	assert.False(t, form.Loading())

	assert.Eventually(t, func() bool { return !form.Submitted() }, time.Second, 5*time.Millisecond)
}

func TestSubmit_FailureKeepsFields(t *testing.T) {
	boom := errors.New("boom")
	form := New[types.SignupRequest](SubmitterFunc[types.SignupRequest](func(ctx context.Context, v types.SignupRequest) error {
		return boom
	}), MissionMessages, time.Second)
	defer form.Close()

	form.Set(filledSignup())
	notice, err := form.Submit(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, MissionMessages.Failure, notice)
	assert.Equal(t, filledSignup(), form.Fields())
	assert.False(t, form.Submitted())
	assert.False(t, form.Loading())
}

func TestSubmit_LoadingWhileSubmitterRuns(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	form := New[types.SignupRequest](SubmitterFunc[types.SignupRequest](func(ctx context.Context, v types.SignupRequest) error {
		close(started)
		<-release
		return nil
	}), MissionMessages, time.Second)
	defer form.Close()
	form.Set(filledSignup())

	done := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		done <- err
	}()

	<-started
	assert.True(t, form.Loading())

	form.Set(filledSignup())
	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, form.Loading())
}

func TestContactAndPartnerRequiredFields(t *testing.T) {
	contact := types.ContactMessage{Name: "Ada", Email: "ada@example.org"}
	assert.Equal(t, []string{"message"}, contact.Missing())

	contact.Message = "hello"
	assert.Empty(t, contact.Missing())

	app := types.PartnerApplication{Email: "x@example.org"}
	assert.Equal(t, []string{"organization", "description"}, app.Missing())
}

func TestSimulatedSubmitter(t *testing.T) {
	s := SimulatedSubmitter[types.ContactMessage]{Delay: 10 * time.Millisecond}
	require.NoError(t, s.Submit(context.Background(), types.ContactMessage{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := SimulatedSubmitter[types.ContactMessage]{Delay: time.Hour}
	assert.ErrorIs(t, slow.Submit(ctx, types.ContactMessage{}), context.Canceled)
}
