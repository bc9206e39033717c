package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/core/port"
)

func TestClickRedirect(t *testing.T) {
	t.Run("redirects and records the visit", func(t *testing.T) {
		h, m := newTestHandler(t, false)
		m.tracker.EXPECT().Resolve(mock.Anything, "12").
			Return(&port.Destination{CampaignID: 12, URL: "https://shop.example.com/", Active: true}, nil)
		m.tracker.EXPECT().RecordVisit(mock.Anything, mock.AnythingOfType("port.Visit")).
			Run(func(_ context.Context, v port.Visit) {
				assert.Equal(t, int64(12), v.CampaignID)
				assert.Equal(t, "203.0.113.9", v.ClientIP)
				assert.Equal(t, "UnitTest/1.0", v.UserAgent)
				assert.False(t, v.OccurredAt.IsZero())
			}).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/click/12", nil)
		req.Header.Set("User-Agent", "UnitTest/1.0")
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://shop.example.com/", rec.Header().Get("Location"))
	})

	t.Run("unknown campaign falls back to the default site", func(t *testing.T) {
		h, m := newTestHandler(t, false)
		m.tracker.EXPECT().Resolve(mock.Anything, "nope").Return(nil, port.ErrNotFound)

		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/click/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, defaultURL, rec.Header().Get("Location"))
	})

	t.Run("storage failure looks like not found", func(t *testing.T) {
		h, m := newTestHandler(t, false)
		m.tracker.EXPECT().Resolve(mock.Anything, "3").
			Return(nil, port.Unavailable("get campaign", errors.New("connection refused")))

		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/click/3", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, defaultURL, rec.Header().Get("Location"))
	})

	t.Run("recording failure does not change the response", func(t *testing.T) {
		h, m := newTestHandler(t, false)
		m.tracker.EXPECT().Resolve(mock.Anything, "4").
			Return(&port.Destination{CampaignID: 4, URL: "https://four.example.com/"}, nil)
		m.tracker.EXPECT().RecordVisit(mock.Anything, mock.Anything).
			Return(&port.RecordFailure{Step: port.StepLog, CampaignID: 4, Err: errors.New("down")})

		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/click/4", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://four.example.com/", rec.Header().Get("Location"))
	})

	t.Run("async mode queues the visit", func(t *testing.T) {
		h, m := newTestHandler(t, true)
		m.tracker.EXPECT().Resolve(mock.Anything, "5").
			Return(&port.Destination{CampaignID: 5, URL: "https://five.example.com/"}, nil)
		m.visits.EXPECT().Submit(mock.MatchedBy(func(v port.Visit) bool { return v.CampaignID == 5 })).Return(false)

		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/click/5", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestClickJSON(t *testing.T) {
	t.Run("returns the destination", func(t *testing.T) {
		h, m := newTestHandler(t, true)
		m.tracker.EXPECT().Resolve(mock.Anything, "7").
			Return(&port.Destination{CampaignID: 7, URL: "https://seven.example.com/"}, nil)
		m.visits.EXPECT().Submit(mock.Anything).Return(true)

		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/click/7", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var body clickResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "https://seven.example.com/", body.RedirectURL)
	})

	t.Run("not found body", func(t *testing.T) {
		h, m := newTestHandler(t, true)
		m.tracker.EXPECT().Resolve(mock.Anything, "99").Return(nil, port.ErrNotFound)

		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/click/99", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t,
			`{"message":"This campaign does not exist","errorCode":404,"redirectURL":"https://default.example.com/"}`,
			rec.Body.String())
	})
}
