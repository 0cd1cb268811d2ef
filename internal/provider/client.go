package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"hotel-aggregator-go/internal/logger"
	"hotel-aggregator-go/internal/normalizer"
	"hotel-aggregator-go/internal/types"
)

var (
	ErrEmptyQuery    = errors.New("empty query")
	ErrNotConfigured = errors.New("provider url not set")
	ErrUpstream      = errors.New("upstream error")
	ErrDecode        = errors.New("decode upstream response")
)

const (
	reviewsPath  = "/api/reviews"
	listingsPath = "/api/listings"
)

// Options configures a Client. RetryInterval is the first backoff wait;
// zero keeps the backoff default.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	RetryBudget   time.Duration
	RetryInterval time.Duration
	Mock          bool
	HTTPClient    *http.Client
	Logger        *logger.Logger
}

// Client fetches one full batch per call. It never returns a partial batch:
// either the whole response decodes or an error is returned.
type Client struct {
	baseURL       string
	retryBudget   time.Duration
	retryInterval time.Duration
	mock          bool
	http          *http.Client
	log           *logger.Logger
}

func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.New()
	}
	budget := opts.RetryBudget
	if budget <= 0 {
		budget = 30 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		retryBudget:   budget,
		retryInterval: opts.RetryInterval,
		mock:          opts.Mock,
		http:          hc,
		log:           log.Component("provider"),
	}
}

// FetchReviews returns the normalized per-source batch for a hotel.
func (c *Client) FetchReviews(ctx context.Context, hotel string) ([]types.SourceRecord, error) {
	hotel = strings.TrimSpace(hotel)
	if hotel == "" {
		return nil, ErrEmptyQuery
	}
	if c.mock {
		c.log.WithField("hotel", hotel).Info("serving mock reviews")
		return normalizer.NormalizeBatch(MockReviews(hotel)), nil
	}
	var raw []types.RawSourceRecord
	if err := c.getJSON(ctx, reviewsPath, url.Values{"hotel": {hotel}}, &raw); err != nil {
		return nil, err
	}
	c.log.WithField("hotel", hotel).WithField("sources", len(raw)).Info("reviews fetched")
	return normalizer.NormalizeBatch(raw), nil
}

// FetchListings returns the normalized business listings matching a search text.
func (c *Client) FetchListings(ctx context.Context, query string) ([]types.BusinessListing, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if c.mock {
		c.log.WithField("query", query).Info("serving mock listings")
		return normalizer.NormalizeListings(MockListings(query)), nil
	}
	var raw []types.RawBusinessListing
	if err := c.getJSON(ctx, listingsPath, url.Values{"query": {query}}, &raw); err != nil {
		return nil, err
	}
	c.log.WithField("query", query).WithField("listings", len(raw)).Info("listings fetched")
	return normalizer.NormalizeListings(raw), nil
}

// getJSON retries network errors and 5xx responses with exponential backoff.
// 4xx responses and undecodable bodies are permanent.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, target interface{}) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}
	endpoint := c.baseURL + path + "?" + q.Encode()
	log := c.log.WithField("endpoint", endpoint)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.retryBudget
	if c.retryInterval > 0 {
		bo.InitialInterval = c.retryInterval
	}

	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		resp, err := c.http.Do(req)
		if err != nil {
			log.WithField("attempt", attempt).WithField("error", err.Error()).Warn("provider request failed")
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrUpstream, err)
		}
		if resp.StatusCode >= 500 {
			log.WithField("attempt", attempt).WithField("status", resp.StatusCode).Warn("provider server error")
			return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
		}
		if resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body))))
		}
		if err := json.Unmarshal(body, target); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %v", ErrDecode, err))
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		log.WithField("attempts", attempt).WithField("error", err.Error()).Error("provider fetch gave up")
		return err
	}
	return nil
}
