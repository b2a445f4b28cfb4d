package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wavecleanup/types"
)

func TestHTTPSubmitter_Success(t *testing.T) {
	var received types.SignupRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(types.User{ID: "u-1", Name: received.Name, Email: received.Email, Message: received.Message})
	}))
	defer srv.Close()

	s := NewHTTPSubmitter(srv.URL + "/")
	user, err := s.SubmitUser(context.Background(), filledSignup())

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, filledSignup(), received)
}

func TestHTTPSubmitter_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), filledSignup())
	assert.ErrorIs(t, err, ErrSubmitRejected)
}

func TestMissionForm_OverHTTP(t *testing.T) {
	var status atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(status.Load()))
		w.Write([]byte(`{"id":"u-2"}`))
	}))
	defer srv.Close()

	form := New[types.SignupRequest](NewHTTPSubmitter(srv.URL), MissionMessages, time.Second)
	defer form.Close()

	status.Store(http.StatusBadGateway)
	form.Set(filledSignup())
	notice, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, MissionMessages.Failure, notice)
	assert.Equal(t, filledSignup(), form.Fields())

	status.Store(http.StatusCreated)
	notice, err = form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MissionMessages.Success, notice)
	assert.Equal(t, types.SignupRequest{}, form.Fields())
}

func TestMissionForm_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	form := New[types.SignupRequest](NewHTTPSubmitter(url), MissionMessages, time.Second)
	defer form.Close()
	form.Set(filledSignup())

	notice, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, MissionMessages.Failure, notice)
	assert.Equal(t, filledSignup(), form.Fields())
}
