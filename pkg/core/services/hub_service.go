package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

type HubService struct {
	repo ports.Repository
	settings
}

func NewHubService(repo ports.Repository, opts ...Option) *HubService {
	return &HubService{repo: repo, settings: newSettings(opts)}
}

// ownedHub loads a hub and checks that ownerID owns it.
func ownedHub(ctx context.Context, repo ports.HubRepository, ownerID string, id int64) (*domain.Hub, error) {
	hub, err := repo.GetHub(ctx, id)
	if err != nil {
		return nil, err
	}
	if hub == nil {
		return nil, domain.ErrHubNotFound
	}
	if hub.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return hub, nil
}

func (s *HubService) withLinks(ctx context.Context, hub *domain.Hub) (*domain.Hub, error) {
	links, err := s.repo.ListLinksByHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}
	hub.Links = links
	return hub, nil
}

func (s *HubService) CreateHub(ctx context.Context, ownerID, slug, title string, theme domain.Theme) (*domain.Hub, error) {
	slug = domain.NormalizeSlug(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrInvalidInput)
	}
	if ownerID == "" {
		return nil, domain.ErrForbidden
	}

	// Check if slug exists
	existing, err := s.repo.GetHubBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlugTaken
	}

	now := s.now()
	hub := &domain.Hub{
		Slug:      slug,
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(title),
		Theme:     domain.DefaultTheme.Merge(theme),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateHub(ctx, hub); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "hub created", "hub_id", hub.ID, "slug", hub.Slug, "owner_id", ownerID)
	return hub, nil
}

// GetHub returns an owned hub with all of its links.
func (s *HubService) GetHub(ctx context.Context, ownerID string, id int64) (*domain.Hub, error) {
	hub, err := ownedHub(ctx, s.repo, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.withLinks(ctx, hub)
}

func (s *HubService) ListHubs(ctx context.Context, ownerID string) ([]domain.Hub, error) {
	return s.repo.ListHubsByOwner(ctx, ownerID)
}

// UpdateHub changes slug, title and theme. Empty values keep the current ones.
func (s *HubService) UpdateHub(ctx context.Context, ownerID string, id int64, slug, title string, theme domain.Theme) (*domain.Hub, error) {
	hub, err := ownedHub(ctx, s.repo, ownerID, id)
	if err != nil {
		return nil, err
	}
	oldSlug := hub.Slug

	// Check slug uniqueness if changed
	if slug = domain.NormalizeSlug(slug); slug != "" && slug != hub.Slug {
		existing, err := s.repo.GetHubBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrSlugTaken
		}
		hub.Slug = slug
	}
	if title = strings.TrimSpace(title); title != "" {
		hub.Title = title
	}
	hub.Theme = hub.Theme.Merge(theme)
	hub.UpdatedAt = s.now()

	if err := s.repo.UpdateHub(ctx, hub); err != nil {
		return nil, err
	}

	s.invalidate(ctx, oldSlug)
	if hub.Slug != oldSlug {
		s.invalidate(ctx, hub.Slug)
	}
	return hub, nil
}

func (s *HubService) DeleteHub(ctx context.Context, ownerID string, id int64) error {
	hub, err := ownedHub(ctx, s.repo, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteHub(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, hub.Slug)
	s.logger.InfoContext(ctx, "hub deleted", "hub_id", id, "slug", hub.Slug)
	return nil
}

// GetHubAdmin returns the owner's view of a hub: every link, unfiltered.
func (s *HubService) GetHubAdmin(ctx context.Context, ownerID, slug string) (*domain.Hub, error) {
	hub, err := s.repo.GetHubBySlug(ctx, domain.NormalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	if hub == nil {
		return nil, domain.ErrHubNotFound
	}
	if hub.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return s.withLinks(ctx, hub)
}

// GetPublicHub returns the hub with only the links visible to rc, best first.
// A zero rc.Now is filled from the service clock.
func (s *HubService) GetPublicHub(ctx context.Context, slug string, rc domain.RequestContext) (*domain.Hub, error) {
	snapshot, err := s.snapshot(ctx, domain.NormalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, domain.ErrHubNotFound
	}

	hub := *snapshot
	if err := s.repo.IncrementHubViews(ctx, snapshot.ID); err != nil {
		s.logger.WarnContext(ctx, "hub view count failed", "hub_id", snapshot.ID, "error", err)
	} else {
		hub.TotalViews++
		s.metrics.IncrementHubViews()
	}

	if rc.Now.IsZero() {
		rc.Now = s.now()
	}

	hub.Links = s.resolver.Resolve(snapshot.Links, rc)
	return &hub, nil
}

// snapshot loads a hub with its unfiltered links, cache first.
func (s *HubService) snapshot(ctx context.Context, slug string) (*domain.Hub, error) {
	if s.cache != nil {
		hub, ok, err := s.cache.Get(ctx, slug)
		if err != nil {
			s.logger.WarnContext(ctx, "hub snapshot read failed", "slug", slug, "error", err)
		} else if ok {
			return hub, nil
		}
	}

	hub, err := s.repo.GetHubBySlug(ctx, slug)
	if err != nil || hub == nil {
		return nil, err
	}
	if _, err := s.withLinks(ctx, hub); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, hub); err != nil {
			s.logger.WarnContext(ctx, "hub snapshot write failed", "slug", slug, "error", err)
		}
	}
	return hub, nil
}

var _ ports.HubService = (*HubService)(nil)
