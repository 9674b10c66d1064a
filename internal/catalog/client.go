package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fitstack/fitstack/internal/telemetry/metrics"
	"github.com/fitstack/fitstack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// example API call
// https://exercisedb.p.rapidapi.com/exercises/exercise/0001

const (
	oneHour            = 60 * 60
	exerciseCacheTTL   = oneHour * 24 // exercise metadata barely ever changes
	defaultHTTPTimeout = 5 * time.Second
)

var ErrUpstreamUnavailable = errors.New("exercise catalog unavailable")

// Exercise is the metadata the external catalog keeps per exercise id.
type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	GifURL       string   `json:"gifUrl"`
	BodyPart     string   `json:"bodyPart"`
	Target       string   `json:"target"`
	Equipment    string   `json:"equipment"`
	Instructions []string `json:"instructions"`
}

type Client struct {
	cache          *freecache.Cache
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	requestTimeout time.Duration
	metricsManager *metrics.Manager
}

func NewClient(
	baseURL, apiKey string,
	httpClient *http.Client,
	requestTimeout time.Duration,
	metricsManager *metrics.Manager,
) *Client {
	megabyte := 1024 * 1024
	cacheSize := 50 * megabyte

	if requestTimeout <= 0 {
		requestTimeout = defaultHTTPTimeout
	}

	return &Client{
		cache:          freecache.NewCache(cacheSize),
		baseURL:        baseURL,
		apiKey:         apiKey,
		httpClient:     httpClient,
		requestTimeout: requestTimeout,
		metricsManager: metricsManager,
	}
}

// GetExercise returns the catalog metadata for an exercise id. Responses are
// cached; the catalog is slow and occasionally down, so callers are expected
// to treat failures here as a degraded display, not a fatal error.
func (c *Client) GetExercise(ctx context.Context, exerciseID string) (exercise *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// must initialize it, otherwise json.Unmarshal(...) below fails
	exercise = &Exercise{}

	cacheKey := fmt.Sprintf("exercise::%s", exerciseID)
	if exerciseBytes, err := c.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found exercise %s in catalog cache", exerciseID)
		if err = json.Unmarshal(exerciseBytes, exercise); err == nil {
			c.metricsManager.CounterCatalogCacheHits.Inc()
			return exercise, nil
		} else {
			log.Errorf("failed to unmarshal cached exercise %s: %s", exerciseID, err)
		}
	}
	c.metricsManager.CounterCatalogCacheMisses.Inc()

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	exerciseURL := fmt.Sprintf("%s/exercises/exercise/%s", c.baseURL, exerciseID)
	req, err := http.NewRequestWithContext(reqCtx, "GET", exerciseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metricsManager.CounterCatalogFetchErrors.Inc()
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metricsManager.CounterCatalogFetchErrors.Inc()
		span.SetStatus(codes.Error, fmt.Sprintf("catalog status: %d", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response bytes: %w", err)
	}

	if err := json.Unmarshal(respBytes, exercise); err != nil {
		return nil, fmt.Errorf("unmarshal catalog response bytes: %w", err)
	}

	// set cache
	if err := c.cache.Set([]byte(cacheKey), respBytes, exerciseCacheTTL); err != nil {
		log.Errorf("failed to write catalog cache for exercise %s: %s", exerciseID, err)
	}

	return exercise, nil
}
