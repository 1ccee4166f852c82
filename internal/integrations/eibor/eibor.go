// Package eibor pulls published EIBOR tenor rates from the Central Bank of
// the UAE XML feed. Rates are informational for the market-insights surface;
// the eligibility engine's stress math uses its own fixed assumptions.
package eibor

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/thekey8/prequal-service/internal/config"
	"github.com/thekey8/prequal-service/internal/models"
)

// Client handles integration with the CBUAE EIBOR feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
	now    func() time.Time
}

// NewClient initializes a new EIBOR client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.EIBORURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// FetchRates retrieves the currently published EIBOR rates per tenor.
func (c *Client) FetchRates() ([]models.EIBORRate, error) {
	body, err := c.sendRequest()
	if err != nil {
		return nil, err
	}

	rates, err := c.parseXMLResponse(body)
	if err != nil {
		return nil, err
	}

	c.log.Infof("Retrieved %d EIBOR tenor rates", len(rates))
	return rates, nil
}

// sendRequest fetches the raw XML feed
func (c *Client) sendRequest() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	// Log the raw XML response for debugging
	c.log.Debugf("EIBOR XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse extracts per-tenor rates from the feed XML
func (c *Client) parseXMLResponse(rawBody []byte) ([]models.EIBORRate, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	elements := doc.FindElements("//EiborRates/Rate")
	if len(elements) == 0 {
		return nil, fmt.Errorf("no EIBOR rate data found in XML")
	}

	fetchedAt := c.now().UTC()
	rates := make([]models.EIBORRate, 0, len(elements))
	for _, el := range elements {
		period := el.FindElement("./Period")
		value := el.FindElement("./Value")
		if period == nil || value == nil {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(value.Text()), 64)
		if err != nil {
			c.log.Warnf("Skipping EIBOR tenor %q with unparsable rate %q", period.Text(), value.Text())
			continue
		}
		rates = append(rates, models.EIBORRate{
			Period:    strings.TrimSpace(period.Text()),
			Rate:      rate,
			FetchedAt: fetchedAt,
		})
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no parsable EIBOR rates in XML")
	}
	return rates, nil
}
