package mission

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-wavecleanup/db"
	"go-wavecleanup/eventbus"
	"go-wavecleanup/forms"
	"go-wavecleanup/types"
)

type failingStore struct{ db.Store }

func (failingStore) SaveUser(context.Context, types.User) (types.User, error) {
	return types.User{}, assert.AnError
}

func newService(t *testing.T) (*Service, *db.MemoryStore, *eventbus.Recorder) {
	t.Helper()
	store := db.NewMemoryStore()
	rec := &eventbus.Recorder{}
	s := NewService(store, rec, zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }
	return s, store, rec
}

func TestSignup_StoresAndPublishes(t *testing.T) {
	s, store, rec := newService(t)

	u, err := s.Signup(context.Background(), types.SignupRequest{Name: " Ada ", Email: "ada@example.org", Message: "count me in"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada", u.Name)

	stored, err := store.GetUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, stored)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, eventbus.SubjectMissionSignup, events[0].Subject)
	var payload types.User
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, "ada@example.org", payload.Email)
}

func TestSignup_MissingFields(t *testing.T) {
	s, store, rec := newService(t)

	_, err := s.Signup(context.Background(), types.SignupRequest{Name: "Ada", Email: "  "})
	assert.ErrorIs(t, err, forms.ErrMissingFields)
	assert.ErrorContains(t, err, "email, message")

	n, _ := store.CountUsers(context.Background())
	assert.Zero(t, n)
	assert.Empty(t, rec.Events())
}

func TestSignup_PublishFailureStillSucceeds(t *testing.T) {
	s, _, rec := newService(t)
	rec.Err = assert.AnError

	_, err := s.Signup(context.Background(), types.SignupRequest{Name: "Ada", Email: "a@b.c", Message: "m"})
	assert.NoError(t, err)
}

func TestSignup_StoreFailure(t *testing.T) {
	s := NewService(failingStore{}, nil, nil)
	_, err := s.Signup(context.Background(), types.SignupRequest{Name: "Ada", Email: "a@b.c", Message: "m"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestContact(t *testing.T) {
	s, store, rec := newService(t)

	_, err := s.Contact(context.Background(), types.ContactMessage{Name: "Ada", Email: "a@b.c", Message: "hi", Type: "spam"})
	assert.ErrorIs(t, err, ErrUnknownInquiryType)

	m, err := s.Contact(context.Background(), types.ContactMessage{Name: "Ada", Email: "a@b.c", Message: "hi", Type: types.InquiryMedia})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Len(t, store.ContactMessages(), 1)
	require.Len(t, rec.Events(), 1)
	assert.Equal(t, eventbus.SubjectContactMessage, rec.Events()[0].Subject)

	_, err = s.Contact(context.Background(), types.ContactMessage{Name: "Ada", Email: "a@b.c"})
	assert.ErrorIs(t, err, forms.ErrMissingFields)
}

func TestApply(t *testing.T) {
	s, store, rec := newService(t)

	_, err := s.Apply(context.Background(), types.PartnerApplication{Organization: "Reef Watch", Email: "a@b.c", Description: "d", Type: "Pirates"})
	assert.ErrorIs(t, err, ErrUnknownPartnerType)

	a, err := s.Apply(context.Background(), types.PartnerApplication{Organization: "Reef Watch", Email: "a@b.c", Description: "d", Type: "NGO"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Len(t, store.PartnerApplications(), 1)
	assert.Equal(t, eventbus.SubjectPartnerApplication, rec.Events()[0].Subject)
}

func TestSignupSubmitter_DrivesForm(t *testing.T) {
	s, store, _ := newService(t)
	f := forms.New(s.SignupSubmitter(), forms.MissionMessages, time.Hour)
	defer f.Close()

	f.Set(types.SignupRequest{Name: "Ada", Email: "a@b.c", Message: "m"})
	notice, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, forms.MissionMessages.Success, notice)

	n, _ := store.CountUsers(context.Background())
	assert.Equal(t, 1, n)
}
