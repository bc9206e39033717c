package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

const token = "valid-token"

func authed(m testMocks) {
	m.auth.EXPECT().Verify(token).Return(&port.Session{Token: token, Admin: "root"}, nil)
}

func adminRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestAdmin_RequiresSession(t *testing.T) {
	h, m := newTestHandler(t, false)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/admin/campaigns", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"statusCode":401,"message":"Unauthorized"}`, rec.Body.String())

	m.auth.EXPECT().Verify("forged").Return(nil, port.ErrUnauthorized)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/campaigns", nil)
	req.Header.Set("Authorization", "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)
}

func TestAdmin_Login(t *testing.T) {
	h, m := newTestHandler(t, false)
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	m.auth.EXPECT().Login(mock.Anything, "root", "pw").Return(&port.Session{Token: "tok", Admin: "root", ExpiresAt: expires}, nil)
	m.auth.EXPECT().Login(mock.Anything, "root", "bad").Return(nil, port.ErrUnauthorized)

	form := url.Values{"name": {"root"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/login", strings.NewReader(`{"name":"root","password":"bad"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, serve(h, req).Code)

	rec = serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/logout", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}

func TestAdmin_Campaigns(t *testing.T) {
	h, m := newTestHandler(t, false)
	authed(m)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m.campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{PlatformIDs: []int64{1, 2}}).
		Return([]port.CampaignDetails{{Campaign: domain.Campaign{ID: 3, Name: "a", DestinationURL: "https://a.example.com", Active: true, CreatedAt: now, UpdatedAt: now}, Clicks: 8}}, nil)
	rec := serve(h, adminRequest(http.MethodGet, "/api/v1/admin/campaigns?platform=1&platform=2", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []campaignResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, int64(8), list[0].Clicks)
	assert.Equal(t, []int64{}, list[0].PlatformIDs)

	assert.Equal(t, http.StatusBadRequest, serve(h, adminRequest(http.MethodGet, "/api/v1/admin/campaigns?platform=x", "")).Code)

	m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).
		Return(&port.CampaignDetails{Campaign: domain.Campaign{ID: 3, Name: "a"}}, nil)
	rec = serve(h, adminRequest(http.MethodGet, "/api/v1/admin/campaigns/3", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clicks":0`)

	m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(nil, port.ErrNotFound)
	rec = serve(h, adminRequest(http.MethodGet, "/api/v1/admin/campaigns/4", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"statusCode":404,"message":"This campaign does not exist"}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, serve(h, adminRequest(http.MethodGet, "/api/v1/admin/campaigns/abc", "")).Code)

	active := false
	m.campaigns.EXPECT().CreateCampaign(mock.Anything, port.CampaignInput{
		Name: "new", DestinationURL: "https://new.example.com", Active: &active, PlatformIDs: []int64{1},
	}).Return(&domain.Campaign{ID: 9}, nil)
	rec = serve(h, adminRequest(http.MethodPost, "/api/v1/admin/campaigns",
		`{"name":"new","destination_url":"https://new.example.com","active":false,"platform_ids":[1]}`))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":9}`, rec.Body.String())

	m.campaigns.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Return(nil, errors.Join(port.ErrInvalidInput, errors.New("bad url")))
	rec = serve(h, adminRequest(http.MethodPost, "/api/v1/admin/campaigns", `{"name":"x","destination_url":"nope"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	m.campaigns.EXPECT().UpdateCampaign(mock.Anything, int64(9), mock.Anything).
		Return(&domain.Campaign{ID: 9, Name: "renamed"}, nil)
	rec = serve(h, adminRequest(http.MethodPut, "/api/v1/admin/campaigns/9", `{"name":"renamed","destination_url":"https://new.example.com"}`))
	assert.Equal(t, http.StatusOK, rec.Code)

	m.campaigns.EXPECT().DeleteCampaign(mock.Anything, int64(9)).Return(nil)
	assert.Equal(t, http.StatusNoContent, serve(h, adminRequest(http.MethodDelete, "/api/v1/admin/campaigns/9", "")).Code)

	m.campaigns.EXPECT().DeleteCampaign(mock.Anything, int64(10)).Return(port.Unavailable("delete", errors.New("down")))
	assert.Equal(t, http.StatusInternalServerError, serve(h, adminRequest(http.MethodDelete, "/api/v1/admin/campaigns/10", "")).Code)
}

func TestAdmin_Platforms(t *testing.T) {
	h, m := newTestHandler(t, false)
	authed(m)

	m.campaigns.EXPECT().ListPlatforms(mock.Anything).Return([]domain.Platform{{ID: 1, Name: "android"}}, nil)
	rec := serve(h, adminRequest(http.MethodGet, "/api/v1/admin/platforms", ""))
	assert.JSONEq(t, `[{"id":1,"name":"android"}]`, rec.Body.String())

	m.campaigns.EXPECT().CreatePlatform(mock.Anything, "android").Return(nil, port.ErrAlreadyExists)
	rec = serve(h, adminRequest(http.MethodPost, "/api/v1/admin/platforms", `{"name":"android"}`))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestAdmin_ReconcileAndHealth(t *testing.T) {
	h, m := newTestHandler(t, false)
	authed(m)

	m.reconciler.EXPECT().Reconcile(mock.Anything, (*int64)(nil)).
		Return([]port.Correction{{CampaignID: 1, Previous: 2, Actual: 3}}, nil)
	rec := serve(h, adminRequest(http.MethodPost, "/api/v1/admin/reconcile", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"corrections":[{"campaign_id":1,"previous":2,"actual":3}]}`, rec.Body.String())

	m.reconciler.EXPECT().Reconcile(mock.Anything, mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 5 })).
		Return([]port.Correction{}, nil)
	rec = serve(h, adminRequest(http.MethodPost, "/api/v1/admin/reconcile", `{"campaign_id":5}`))
	assert.JSONEq(t, `{"corrections":[]}`, rec.Body.String())

	m.tracker.EXPECT().SkewCount().Return(int64(2))
	h.svc.Health = map[string]port.Pinger{"store": fakePinger{}, "redis": fakePinger{err: errors.New("refused")}}
	rec = serve(h, adminRequest(http.MethodGet, "/api/v1/admin/health", ""))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t,
		`{"status":"degraded","backends":[{"name":"redis","error":"refused"},{"name":"store"}],"counter_skew":2}`,
		rec.Body.String())
}
