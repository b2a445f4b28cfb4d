package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-wavecleanup/types"
)

// ErrSubmitRejected is returned when the sign-up endpoint answers with a non-2xx status.
var ErrSubmitRejected = errors.New("submission rejected")

const usersPath = "/api/users"

// HTTPSubmitter posts mission sign-ups to a remote /api/users endpoint.
type HTTPSubmitter struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  http.DefaultClient,
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, req types.SignupRequest) error {
	_, err := s.SubmitUser(ctx, req)
	return err
}

// SubmitUser sends one sign-up and decodes the stored user from the reply.
func (s *HTTPSubmitter) SubmitUser(ctx context.Context, req types.SignupRequest) (types.User, error) {
	var user types.User

	payload, err := json.Marshal(req)
	if err != nil {
		return user, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+usersPath, bytes.NewReader(payload))
	if err != nil {
		return user, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return user, fmt.Errorf("posting %s: %w", usersPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return user, fmt.Errorf("%w: %s", ErrSubmitRejected, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return user, fmt.Errorf("decoding sign-up response: %w", err)
	}
	return user, nil
}

// SimulatedSubmitter waits and reports success without sending anything.
type SimulatedSubmitter[T any] struct {
	Delay time.Duration
}

func (s SimulatedSubmitter[T]) Submit(ctx context.Context, _ T) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
