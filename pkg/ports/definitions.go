package ports

//go:generate mockgen -source=definitions.go -destination=mocks/mocks.go -package=mocks -exclude_interfaces=HubRepository,LinkRepository

import (
	"context"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

// HubRepository defines storage operations for hubs.
// Lookups return (nil, nil) when nothing matches.
type HubRepository interface {
	CreateHub(ctx context.Context, hub *domain.Hub) error
	GetHub(ctx context.Context, id int64) (*domain.Hub, error)
	GetHubBySlug(ctx context.Context, slug string) (*domain.Hub, error)
	UpdateHub(ctx context.Context, hub *domain.Hub) error
	DeleteHub(ctx context.Context, id int64) error
	ListHubsByOwner(ctx context.Context, ownerID string) ([]domain.Hub, error)
	IncrementHubViews(ctx context.Context, id int64) error
}

// LinkRepository defines storage operations for links and their clicks.
type LinkRepository interface {
	CreateLink(ctx context.Context, link *domain.Link) error
	GetLink(ctx context.Context, id int64) (*domain.Link, error)
	UpdateLink(ctx context.Context, link *domain.Link) error
	DeleteLink(ctx context.Context, id int64) error
	ListLinksByHub(ctx context.Context, hubID int64) ([]domain.Link, error)

	// Stats. RecordVisit also increments the link's click counter.
	RecordVisit(ctx context.Context, visit *domain.Visit) error
	GetLinkStats(ctx context.Context, linkID int64) (*domain.LinkStats, error)
}

// Repository is the full storage surface; the SQLite adapter implements it.
type Repository interface {
	HubRepository
	LinkRepository
	Dump(ctx context.Context) ([]domain.Hub, error) // For migration
}

// SnapshotCache stores persisted hubs with their unfiltered links by slug.
// It never stores resolved (per-visitor) output.
type SnapshotCache interface {
	Get(ctx context.Context, slug string) (*domain.Hub, bool, error)
	Set(ctx context.Context, hub *domain.Hub) error
	Invalidate(ctx context.Context, slug string) error
}

// HubService defines hub management and public resolution.
type HubService interface {
	CreateHub(ctx context.Context, ownerID, slug, title string, theme domain.Theme) (*domain.Hub, error)
	GetHub(ctx context.Context, ownerID string, id int64) (*domain.Hub, error)
	ListHubs(ctx context.Context, ownerID string) ([]domain.Hub, error)
	UpdateHub(ctx context.Context, ownerID string, id int64, slug, title string, theme domain.Theme) (*domain.Hub, error)
	DeleteHub(ctx context.Context, ownerID string, id int64) error
	GetHubAdmin(ctx context.Context, ownerID, slug string) (*domain.Hub, error)
	GetPublicHub(ctx context.Context, slug string, rc domain.RequestContext) (*domain.Hub, error)
}

// LinkService defines link authoring and click tracking.
type LinkService interface {
	CreateLink(ctx context.Context, ownerID string, link domain.Link) (*domain.Link, error)
	UpdateLink(ctx context.Context, ownerID string, id int64, patch domain.LinkPatch) (*domain.Link, error)
	DeleteLink(ctx context.Context, ownerID string, id int64) error
	TrackClick(ctx context.Context, id int64, referer, userAgent, ip string) (string, error)
	GetLinkStats(ctx context.Context, ownerID string, id int64) (*domain.LinkStats, error)
}
