package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/metrics"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports/mocks"
)

type LinkServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockRepository
	cache   *mocks.MockSnapshotCache
	metrics *metrics.Metrics
	service *LinkService
	ctx     context.Context
}

func TestLinkServiceSuite(t *testing.T) {
	suite.Run(t, new(LinkServiceSuite))
}

func (s *LinkServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockRepository(s.ctrl)
	s.cache = mocks.NewMockSnapshotCache(s.ctrl)
	s.metrics = metrics.NewWithRegistry(prometheus.NewRegistry())
	s.ctx = context.Background()
	s.service = NewLinkService(s.repo,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return fixedNow }),
		WithSnapshotCache(s.cache),
		WithMetrics(s.metrics),
		WithIPHashSalt("pepper"),
	)
}

func (s *LinkServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LinkServiceSuite) expectOwnedHub() {
	s.repo.EXPECT().GetHub(gomock.Any(), int64(1)).Return(&domain.Hub{ID: 1, OwnerID: "owner-1", Slug: "alice"}, nil)
}

func (s *LinkServiceSuite) TestCreateLink() {
	s.Run("stores link and invalidates hub snapshot", func() {
		s.expectOwnedHub()
		s.repo.EXPECT().CreateLink(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.Link) error {
			l.ID = 7
			return nil
		})
		s.cache.EXPECT().Invalidate(gomock.Any(), "alice").Return(nil)

		link, err := s.service.CreateLink(s.ctx, "owner-1", domain.Link{
			HubID:       1,
			OriginalURL: " https://example.com ",
			Title:       "Example",
			Priority:    3,
			Active:      true,
			Clicks:      999,
		})
		s.Require().NoError(err)
		s.Equal(int64(7), link.ID)
		s.Equal("https://example.com", link.OriginalURL)
		s.Zero(link.Clicks)
		s.NotNil(link.Rules)
		s.Equal(fixedNow, link.CreatedAt)
	})

	s.Run("validation happens before any lookup", func() {
		cases := []domain.Link{
			{HubID: 1, Title: "no url"},
			{HubID: 1, OriginalURL: "not a url", Title: "relative"},
			{HubID: 1, OriginalURL: "https://example.com"},
		}
		for _, l := range cases {
			_, err := s.service.CreateLink(s.ctx, "owner-1", l)
			s.ErrorIs(err, domain.ErrInvalidInput)
		}
	})

	s.Run("rejects conflicting rules", func() {
		_, err := s.service.CreateLink(s.ctx, "owner-1", domain.Link{
			HubID:       1,
			OriginalURL: "https://example.com",
			Title:       "x",
			Rules: []domain.Rule{
				{Kind: domain.RuleDevice, Value: "mobile", Action: domain.ActionShow},
				{Kind: domain.RuleDevice, Value: "mobile", Action: domain.ActionHide},
			},
		})
		s.ErrorIs(err, domain.ErrConflictingRules)
	})

	s.Run("hub owned by someone else", func() {
		s.repo.EXPECT().GetHub(gomock.Any(), int64(1)).Return(&domain.Hub{ID: 1, OwnerID: "owner-2"}, nil)

		_, err := s.service.CreateLink(s.ctx, "owner-1", domain.Link{HubID: 1, OriginalURL: "https://example.com", Title: "x"})
		s.ErrorIs(err, domain.ErrForbidden)
	})
}

func (s *LinkServiceSuite) TestUpdateLink() {
	s.Run("applies partial patch", func() {
		s.repo.EXPECT().GetLink(gomock.Any(), int64(7)).Return(&domain.Link{ID: 7, HubID: 1, OriginalURL: "https://a.example", Title: "A", Priority: 1, Active: true}, nil)
		s.expectOwnedHub()
		s.repo.EXPECT().UpdateLink(gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "alice").Return(nil)

		priority := 8.0
		active := false
		link, err := s.service.UpdateLink(s.ctx, "owner-1", 7, domain.LinkPatch{Priority: &priority, Active: &active})
		s.Require().NoError(err)
		s.Equal(8.0, link.Priority)
		s.False(link.Active)
		s.Equal("A", link.Title)
		s.Equal(fixedNow, link.UpdatedAt)
	})

	s.Run("re-validates supplied rules", func() {
		s.repo.EXPECT().GetLink(gomock.Any(), int64(7)).Return(&domain.Link{ID: 7, HubID: 1}, nil)
		s.expectOwnedHub()

		rules := []domain.Rule{
			{Kind: domain.RuleDevice, Value: "mobile,tablet", Action: domain.ActionShow},
			{Kind: domain.RuleDevice, Value: "tablet", Action: domain.ActionHide},
		}
		_, err := s.service.UpdateLink(s.ctx, "owner-1", 7, domain.LinkPatch{Rules: &rules})
		s.ErrorIs(err, domain.ErrOverlappingDevices)
	})

	s.Run("empty title is rejected", func() {
		s.repo.EXPECT().GetLink(gomock.Any(), int64(7)).Return(&domain.Link{ID: 7, HubID: 1}, nil)
		s.expectOwnedHub()

		blank := "  "
		_, err := s.service.UpdateLink(s.ctx, "owner-1", 7, domain.LinkPatch{Title: &blank})
		s.ErrorIs(err, domain.ErrInvalidInput)
	})

	s.Run("missing link", func() {
		s.repo.EXPECT().GetLink(gomock.Any(), int64(8)).Return(nil, nil)

		_, err := s.service.UpdateLink(s.ctx, "owner-1", 8, domain.LinkPatch{})
		s.ErrorIs(err, domain.ErrLinkNotFound)
	})
}

func (s *LinkServiceSuite) TestDeleteLink() {
	s.repo.EXPECT().GetLink(gomock.Any(), int64(7)).Return(&domain.Link{ID: 7, HubID: 1}, nil)
	s.expectOwnedHub()
	s.repo.EXPECT().DeleteLink(gomock.Any(), int64(7)).Return(nil)
	s.cache.EXPECT().Invalidate(gomock.Any(), "alice").Return(nil)

	s.NoError(s.service.DeleteLink(s.ctx, "owner-1", 7))
}

func (s *LinkServiceSuite) TestTrackClick() {
	s.Run("records visit with device and hashed ip", func() {
		s.repo.EXPECT().GetLink(gomock.Any(), int64(7)).Return(&domain.Link{ID: 7, HubID: 1, OriginalURL: "https://example.com"}, nil)
		s.repo.EXPECT().RecordVisit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *domain.Visit) error {
			sum := sha256.Sum256([]byte("pepper" + "203.0.113.9"))
			s.Equal(hex.EncodeToString(sum[:]), v.IPHash)
			s.Equal(domain.DeviceMobile, v.Device)
			s.Equal("https://t.co", v.Referer)
			s.Equal(fixedNow, v.CreatedAt)
			return nil
		})
		s.repo.EXPECT().GetHub(gomock.Any(), int64(1)).Return(&domain.Hub{ID: 1, Slug: "alice"}, nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "alice").Return(nil)

		url, err := s.service.TrackClick(s.ctx, 7, "https://t.co", mobileUA, "203.0.113.9")
		s.Require().NoError(err)
		s.Equal("https://example.com", url)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Clicks))
	})

	s.Run("unknown link", func() {
		s.repo.EXPECT().GetLink(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := s.service.TrackClick(s.ctx, 99, "", "", "")
		s.ErrorIs(err, domain.ErrLinkNotFound)
	})
}

func (s *LinkServiceSuite) TestGetLinkStats() {
	s.repo.EXPECT().GetLink(gomock.Any(), int64(7)).Return(&domain.Link{ID: 7, HubID: 1}, nil)
	s.expectOwnedHub()
	s.repo.EXPECT().GetLinkStats(gomock.Any(), int64(7)).Return(&domain.LinkStats{TotalClicks: 3}, nil)

	stats, err := s.service.GetLinkStats(s.ctx, "owner-1", 7)
	s.Require().NoError(err)
	s.Equal(int64(3), stats.TotalClicks)
}

func (s *LinkServiceSuite) TestHashIP_EmptyStaysEmpty() {
	s.Equal("", s.service.hashIP(""))
}
