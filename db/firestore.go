package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-wavecleanup/types"
)

type FirestoreStore struct {
	client *firestore.Client
}

// InitFirestore connects with base64-encoded service account credentials.
func InitFirestore(ctx context.Context, encodedCreds string) (*FirestoreStore, error) {
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("decoding Firestore credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("initializing Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting Firestore client: %w", err)
	}
	return NewFirestoreStore(client), nil
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *FirestoreStore) SaveUser(ctx context.Context, u types.User) (types.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := s.client.Collection(usersCollection).Doc(u.ID).Set(ctx, u); err != nil {
		return types.User{}, fmt.Errorf("saving user %s: %w", u.ID, err)
	}
	return u, nil
}

func (s *FirestoreStore) GetUser(ctx context.Context, id string) (types.User, error) {
	var u types.User
	snap, err := s.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return u, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return u, fmt.Errorf("getting user %s: %w", id, err)
	}
	if err := snap.DataTo(&u); err != nil {
		return u, fmt.Errorf("converting user %s: %w", id, err)
	}
	u.ID = snap.Ref.ID
	return u, nil
}

func (s *FirestoreStore) ListUsersSince(ctx context.Context, since time.Time) ([]types.User, error) {
	iter := s.client.Collection(usersCollection).
		Where("createdAt", ">=", since).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var users []types.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating users: %w", err)
		}
		var u types.User
		if err := doc.DataTo(&u); err != nil {
			return nil, fmt.Errorf("converting user %s: %w", doc.Ref.ID, err)
		}
		u.ID = doc.Ref.ID
		users = append(users, u)
	}
	return users, nil
}

func (s *FirestoreStore) CountUsers(ctx context.Context) (int, error) {
	results, err := s.client.Collection(usersCollection).NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	v, ok := results["all"]
	if !ok {
		return 0, fmt.Errorf("counting users: missing aggregation result")
	}
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case interface{ GetIntegerValue() int64 }:
		return int(n.GetIntegerValue()), nil
	default:
		return 0, fmt.Errorf("counting users: unexpected result type %T", v)
	}
}

func (s *FirestoreStore) SaveContactMessage(ctx context.Context, m types.ContactMessage) (types.ContactMessage, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if _, err := s.client.Collection(contactCollection).Doc(m.ID).Set(ctx, m); err != nil {
		return types.ContactMessage{}, fmt.Errorf("saving contact message %s: %w", m.ID, err)
	}
	return m, nil
}

func (s *FirestoreStore) SavePartnerApplication(ctx context.Context, a types.PartnerApplication) (types.PartnerApplication, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if _, err := s.client.Collection(applicationsCollection).Doc(a.ID).Set(ctx, a); err != nil {
		return types.PartnerApplication{}, fmt.Errorf("saving partner application %s: %w", a.ID, err)
	}
	return a, nil
}

func (s *FirestoreStore) SaveDigest(ctx context.Context, d types.Digest) (types.Digest, error) {
	if d.ID == "" {
		d.ID = d.WindowEnd.UTC().Format("20060102T150405Z")
	}
	if _, err := s.client.Collection(digestsCollection).Doc(d.ID).Set(ctx, d); err != nil {
		return types.Digest{}, fmt.Errorf("saving digest %s: %w", d.ID, err)
	}
	return d, nil
}

func (s *FirestoreStore) LatestDigest(ctx context.Context) (types.Digest, bool, error) {
	var d types.Digest
	docs, err := s.client.Collection(digestsCollection).
		OrderBy("windowEnd", firestore.Desc).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return d, false, fmt.Errorf("querying latest digest: %w", err)
	}
	if len(docs) == 0 {
		return d, false, nil
	}
	if err := docs[0].DataTo(&d); err != nil {
		return d, false, fmt.Errorf("converting digest %s: %w", docs[0].Ref.ID, err)
	}
	d.ID = docs[0].Ref.ID
	return d, true, nil
}
