package eibor

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thekey8/prequal-service/internal/config"
)

const feedXML = `<?xml version="1.0" encoding="utf-8"?>
<EiborRates>
	<Rate><Period>ON</Period><Value>4.21</Value></Rate>
	<Rate><Period>1M</Period><Value>4.35</Value></Rate>
	<Rate><Period>3M</Period><Value>4.37</Value></Rate>
	<Rate><Period>6M</Period><Value>4.41</Value></Rate>
	<Rate><Period>1Y</Period><Value>bad</Value></Rate>
</EiborRates>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(&config.Config{EIBORURL: srv.URL}, logrus.New())
	c.now = func() time.Time { return time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC) }
	return c
}

func TestFetchRatesParsesFeed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML))
	})

	rates, err := c.FetchRates()
	require.NoError(t, err)
	require.Len(t, rates, 4, "the unparsable 1Y tenor is skipped")
	assert.Equal(t, "3M", rates[2].Period)
	assert.Equal(t, 4.37, rates[2].Rate)
	assert.Equal(t, time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC), rates[2].FetchedAt)
}

func TestFetchRatesUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	})

	_, err := c.FetchRates()
	assert.ErrorContains(t, err, "unexpected status code: 503")
}

func TestFetchRatesEmptyFeed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><EiborRates></EiborRates>`))
	})

	_, err := c.FetchRates()
	assert.ErrorContains(t, err, "no EIBOR rate data")
}
