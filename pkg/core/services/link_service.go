package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/resolver"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

type LinkService struct {
	repo ports.Repository
	settings
}

func NewLinkService(repo ports.Repository, opts ...Option) *LinkService {
	return &LinkService{repo: repo, settings: newSettings(opts)}
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: original URL is required", domain.ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: original URL must be absolute", domain.ErrInvalidInput)
	}
	return nil
}

// ownedLink loads a link and the hub it belongs to, checking ownership.
func (s *LinkService) ownedLink(ctx context.Context, ownerID string, id int64) (*domain.Link, *domain.Hub, error) {
	link, err := s.repo.GetLink(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if link == nil {
		return nil, nil, domain.ErrLinkNotFound
	}
	hub, err := ownedHub(ctx, s.repo, ownerID, link.HubID)
	if err != nil {
		return nil, nil, err
	}
	return link, hub, nil
}

func (s *LinkService) CreateLink(ctx context.Context, ownerID string, link domain.Link) (*domain.Link, error) {
	link.OriginalURL = strings.TrimSpace(link.OriginalURL)
	link.Title = strings.TrimSpace(link.Title)
	if err := validateURL(link.OriginalURL); err != nil {
		return nil, err
	}
	if link.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if err := domain.ValidateRules(link.Rules); err != nil {
		return nil, err
	}

	hub, err := ownedHub(ctx, s.repo, ownerID, link.HubID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	link.ID = 0
	link.Clicks = 0
	if link.Rules == nil {
		link.Rules = []domain.Rule{}
	}
	link.CreatedAt = now
	link.UpdatedAt = now

	if err := s.repo.CreateLink(ctx, &link); err != nil {
		return nil, err
	}
	s.invalidate(ctx, hub.Slug)
	return &link, nil
}

// UpdateLink applies a partial update. Supplied rules are validated as a whole set.
func (s *LinkService) UpdateLink(ctx context.Context, ownerID string, id int64, patch domain.LinkPatch) (*domain.Link, error) {
	link, hub, err := s.ownedLink(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.OriginalURL != nil {
		trimmed := strings.TrimSpace(*patch.OriginalURL)
		if err := validateURL(trimmed); err != nil {
			return nil, err
		}
		patch.OriginalURL = &trimmed
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		patch.Title = &trimmed
	}
	if patch.Rules != nil {
		if err := domain.ValidateRules(*patch.Rules); err != nil {
			return nil, err
		}
		if *patch.Rules == nil {
			empty := []domain.Rule{}
			patch.Rules = &empty
		}
	}

	patch.Apply(link)
	link.UpdatedAt = s.now()

	if err := s.repo.UpdateLink(ctx, link); err != nil {
		return nil, err
	}
	s.invalidate(ctx, hub.Slug)
	return link, nil
}

func (s *LinkService) DeleteLink(ctx context.Context, ownerID string, id int64) error {
	_, hub, err := s.ownedLink(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteLink(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, hub.Slug)
	return nil
}

// TrackClick records a visit and returns the link's destination.
func (s *LinkService) TrackClick(ctx context.Context, id int64, referer, userAgent, ip string) (string, error) {
	link, err := s.repo.GetLink(ctx, id)
	if err != nil {
		return "", err
	}
	if link == nil {
		return "", domain.ErrLinkNotFound
	}

	visit := &domain.Visit{
		LinkID:    link.ID,
		Referer:   referer,
		UserAgent: userAgent,
		Device:    resolver.ClassifyDevice(userAgent),
		IPHash:    s.hashIP(ip),
		CreatedAt: s.now(),
	}
	if err := s.repo.RecordVisit(ctx, visit); err != nil {
		return "", err
	}
	s.metrics.IncrementClicks()

	// Clicks feed the ranking, so the cached snapshot is stale now.
	if hub, err := s.repo.GetHub(ctx, link.HubID); err != nil {
		s.logger.WarnContext(ctx, "hub lookup after click failed", "link_id", link.ID, "error", err)
	} else if hub != nil {
		s.invalidate(ctx, hub.Slug)
	}

	return link.OriginalURL, nil
}

func (s *LinkService) GetLinkStats(ctx context.Context, ownerID string, id int64) (*domain.LinkStats, error) {
	if _, _, err := s.ownedLink(ctx, ownerID, id); err != nil {
		return nil, err
	}
	return s.repo.GetLinkStats(ctx, id)
}

// hashIP anonymizes a visitor address. Empty input stays empty.
func (s *LinkService) hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s.ipSalt + ip))
	return hex.EncodeToString(sum[:])
}

var _ ports.LinkService = (*LinkService)(nil)
