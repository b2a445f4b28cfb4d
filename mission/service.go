// Package mission accepts the site's submissions: mission sign-ups, contact
// messages and partner applications. Each accepted submission is stored and
// announced on the event bus.
package mission

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-wavecleanup/db"
	"go-wavecleanup/eventbus"
	"go-wavecleanup/forms"
	"go-wavecleanup/types"
)

var (
	ErrUnknownInquiryType = errors.New("unknown inquiry type")
	ErrUnknownPartnerType = errors.New("unknown partner type")
)

type Service struct {
	store  db.Store
	events eventbus.Publisher
	logger *zap.Logger
	now    func() time.Time
}

func NewService(store db.Store, events eventbus.Publisher, logger *zap.Logger) *Service {
	if events == nil {
		events = eventbus.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		events: events,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Signup(ctx context.Context, req types.SignupRequest) (types.User, error) {
	if err := missing(req); err != nil {
		return types.User{}, err
	}

	user, err := s.store.SaveUser(ctx, types.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: s.now(),
	})
	if err != nil {
		return types.User{}, fmt.Errorf("storing sign-up: %w", err)
	}

	s.publish(eventbus.SubjectMissionSignup, user.ID, user.CreatedAt, user)
	s.logger.Info("mission sign-up stored", zap.String("id", user.ID))
	return user, nil
}

func (s *Service) Contact(ctx context.Context, m types.ContactMessage) (types.ContactMessage, error) {
	if err := missing(m); err != nil {
		return types.ContactMessage{}, err
	}
	if m.Type != "" && !m.Type.Valid() {
		return types.ContactMessage{}, fmt.Errorf("%w: %q", ErrUnknownInquiryType, m.Type)
	}

	m.ID = ""
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Organization = strings.TrimSpace(m.Organization)
	m.Message = strings.TrimSpace(m.Message)
	m.CreatedAt = s.now()

	stored, err := s.store.SaveContactMessage(ctx, m)
	if err != nil {
		return types.ContactMessage{}, fmt.Errorf("storing contact message: %w", err)
	}

	s.publish(eventbus.SubjectContactMessage, stored.ID, stored.CreatedAt, stored)
	s.logger.Info("contact message stored", zap.String("id", stored.ID), zap.String("type", string(stored.Type)))
	return stored, nil
}

func (s *Service) Apply(ctx context.Context, a types.PartnerApplication) (types.PartnerApplication, error) {
	if err := missing(a); err != nil {
		return types.PartnerApplication{}, err
	}
	if a.Type != "" && !slices.Contains(types.PartnerTypes, a.Type) {
		return types.PartnerApplication{}, fmt.Errorf("%w: %q", ErrUnknownPartnerType, a.Type)
	}

	a.ID = ""
	a.Organization = strings.TrimSpace(a.Organization)
	a.Email = strings.TrimSpace(a.Email)
	a.Description = strings.TrimSpace(a.Description)
	a.CreatedAt = s.now()

	stored, err := s.store.SavePartnerApplication(ctx, a)
	if err != nil {
		return types.PartnerApplication{}, fmt.Errorf("storing partner application: %w", err)
	}

	s.publish(eventbus.SubjectPartnerApplication, stored.ID, stored.CreatedAt, stored)
	s.logger.Info("partner application stored", zap.String("id", stored.ID), zap.String("organization", stored.Organization))
	return stored, nil
}

// SignupSubmitter feeds the mission form straight into the store.
func (s *Service) SignupSubmitter() forms.Submitter[types.SignupRequest] {
	return forms.SubmitterFunc[types.SignupRequest](func(ctx context.Context, req types.SignupRequest) error {
		_, err := s.Signup(ctx, req)
		return err
	})
}

func (s *Service) ContactSubmitter() forms.Submitter[types.ContactMessage] {
	return forms.SubmitterFunc[types.ContactMessage](func(ctx context.Context, m types.ContactMessage) error {
		_, err := s.Contact(ctx, m)
		return err
	})
}

func (s *Service) ApplicationSubmitter() forms.Submitter[types.PartnerApplication] {
	return forms.SubmitterFunc[types.PartnerApplication](func(ctx context.Context, a types.PartnerApplication) error {
		_, err := s.Apply(ctx, a)
		return err
	})
}

// publish never fails the submission; the record is already stored.
func (s *Service) publish(subject, id string, at time.Time, payload any) {
	e, err := eventbus.NewEvent(subject, id, at, payload)
	if err == nil {
		err = s.events.Publish(e)
	}
	if err != nil {
		s.logger.Warn("event not published", zap.String("subject", subject), zap.String("id", id), zap.Error(err))
	}
}

func missing(f forms.Fields) error {
	if names := f.Missing(); len(names) > 0 {
		return fmt.Errorf("%w: %s", forms.ErrMissingFields, strings.Join(names, ", "))
	}
	return nil
}
