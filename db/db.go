package db

import (
	"context"
	"errors"
	"time"

	"go-wavecleanup/types"
)

const (
	usersCollection        = "users"
	contactCollection      = "contactMessages"
	applicationsCollection = "partnerApplications"
	digestsCollection      = "digests"
)

var ErrNotFound = errors.New("not found")

// Store persists what visitors submit. Hotspots and the rest of the site
// content are fixed and never stored.
type Store interface {
	SaveUser(ctx context.Context, u types.User) (types.User, error)
	GetUser(ctx context.Context, id string) (types.User, error)
	ListUsersSince(ctx context.Context, since time.Time) ([]types.User, error)
	CountUsers(ctx context.Context) (int, error)

	SaveContactMessage(ctx context.Context, m types.ContactMessage) (types.ContactMessage, error)
	SavePartnerApplication(ctx context.Context, a types.PartnerApplication) (types.PartnerApplication, error)

	SaveDigest(ctx context.Context, d types.Digest) (types.Digest, error)
	LatestDigest(ctx context.Context) (types.Digest, bool, error)

	Close() error
}
