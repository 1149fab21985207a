package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/wadjakorntonsri/go-link-hub/pkg/config"
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports/mocks"
)

const testSecret = "router-secret"

type RouterSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	hubs   *mocks.MockHubService
	links  *mocks.MockLinkService
	router http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.hubs = mocks.NewMockHubService(s.ctrl)
	s.links = mocks.NewMockLinkService(s.ctrl)
	s.router = NewRouter(&config.Config{JWTSecret: testSecret}, s.hubs, s.links, discardLogger())
}

func (s *RouterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterSuite) authed(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+generateTestToken(s.T(), testSecret, "owner-1", time.Minute))
	return req
}

func (s *RouterSuite) message(rr *httptest.ResponseRecorder) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	return body["message"]
}

func (s *RouterSuite) TestHealthz() {
	rr := s.do(httptest.NewRequest("GET", "/healthz", nil))
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("ok", s.message(rr))
	s.NotEmpty(rr.Header().Get(RequestIDHeader))
}

func (s *RouterSuite) TestPublicHub_BuildsRequestContext() {
	s.hubs.EXPECT().GetPublicHub(gomock.Any(), "my portfolio", gomock.Any()).
		DoAndReturn(func(_ any, _ string, rc domain.RequestContext) (*domain.Hub, error) {
			s.Equal("test-agent", rc.UserAgent)
			s.Require().NotNil(rc.Location)
			s.Equal("India", rc.Location.Country)
			s.Equal("400001", rc.Location.PostalCode)
			s.False(rc.Now.IsZero())
			return &domain.Hub{ID: 1, Slug: "my portfolio", Links: []domain.Link{{ID: 2, Title: "Instagram"}}}, nil
		})

	req := httptest.NewRequest("GET", "/u/my%20portfolio", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(LocationHeader, `{"country":"India","city":"Mumbai","postalCode":"400001"}`)
	rr := s.do(req)

	s.Equal(http.StatusOK, rr.Code)
	var body struct {
		Hub   domain.Hub    `json:"hub"`
		Links []domain.Link `json:"links"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Equal("my portfolio", body.Hub.Slug)
	s.Nil(body.Hub.Links)
	s.Require().Len(body.Links, 1)
	s.Equal("Instagram", body.Links[0].Title)
}

func (s *RouterSuite) TestPublicHub_MalformedLocationIsUnknown() {
	s.hubs.EXPECT().GetPublicHub(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ any, _ string, rc domain.RequestContext) (*domain.Hub, error) {
			s.Nil(rc.Location)
			return &domain.Hub{Slug: "alice"}, nil
		})

	req := httptest.NewRequest("GET", "/u/alice", nil)
	req.Header.Set(LocationHeader, `{not json`)
	rr := s.do(req)

	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"links":[]`)
}

func (s *RouterSuite) TestPublicHub_NotFound() {
	s.hubs.EXPECT().GetPublicHub(gomock.Any(), "ghost", gomock.Any()).Return(nil, domain.ErrHubNotFound)

	rr := s.do(httptest.NewRequest("GET", "/u/ghost", nil))
	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal("Hub not found", s.message(rr))
}

func (s *RouterSuite) TestClick_IsPublic() {
	s.links.EXPECT().TrackClick(gomock.Any(), int64(5), "https://t.co", gomock.Any(), "198.51.100.7").Return("https://example.com", nil)

	req := httptest.NewRequest("POST", "/api/v1/links/5/click", nil)
	req.Header.Set("Referer", "https://t.co")
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	rr := s.do(req)

	s.Equal(http.StatusOK, rr.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Equal("Click recorded", body["message"])
	s.Equal("https://example.com", body["url"])
}

func (s *RouterSuite) TestProtectedRoutesRequireToken() {
	rr := s.do(httptest.NewRequest("GET", "/api/v1/hubs", nil))
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterSuite) TestCreateLink_DefaultsActive() {
	s.links.EXPECT().CreateLink(gomock.Any(), "owner-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, l domain.Link) (*domain.Link, error) {
			s.True(l.Active)
			s.Equal(int64(1), l.HubID)
			s.Len(l.Rules, 1)
			l.ID = 10
			return &l, nil
		})

	body := `{"hub_id":1,"original_url":"https://example.com","title":"x","priority":2,
		"rules":[{"type":"device","value":"mobile","action":"show"}]}`
	rr := s.do(s.authed("POST", "/api/v1/links", body))
	s.Equal(http.StatusCreated, rr.Code)
}

func (s *RouterSuite) TestErrorMapping() {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrConflictingRules, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrLinkNotFound, http.StatusNotFound},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		s.links.EXPECT().UpdateLink(gomock.Any(), "owner-1", int64(3), gomock.Any()).Return(nil, tc.err)

		rr := s.do(s.authed("PUT", "/api/v1/links/3", `{"title":"new"}`))
		s.Equal(tc.status, rr.Code, tc.err.Error())
	}

	s.hubs.EXPECT().CreateHub(gomock.Any(), "owner-1", "taken", "", gomock.Any()).Return(nil, domain.ErrSlugTaken)
	rr := s.do(s.authed("POST", "/api/v1/hubs", `{"slug":"taken"}`))
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *RouterSuite) TestBadInput() {
	rr := s.do(s.authed("PUT", "/api/v1/links/abc", `{}`))
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.do(s.authed("POST", "/api/v1/hubs", `{not json`))
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *RouterSuite) TestGetHubAdmin() {
	s.hubs.EXPECT().GetHubAdmin(gomock.Any(), "owner-1", "alice").Return(&domain.Hub{
		Slug:  "alice",
		Links: []domain.Link{{ID: 1}, {ID: 2, Active: false}},
	}, nil)

	rr := s.do(s.authed("GET", "/api/v1/hubs/alice/admin", ""))
	s.Equal(http.StatusOK, rr.Code)
	var body struct {
		Links []domain.Link `json:"links"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Len(body.Links, 2)
}
