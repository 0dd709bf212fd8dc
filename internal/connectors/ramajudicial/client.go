package ramajudicial

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

const (
	// DefaultBaseURL is the production consultation API.
	DefaultBaseURL = "https://consultaprocesos.ramajudicial.gov.co:448/api/v2"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	searchPath = "/Procesos/Consulta/NumeroRadicacion"
	detailPath = "/Proceso/Detalle"
	docketPath = "/Proceso/Actuaciones"
)

// defaultHeaders identify the client as a regular browser session; the
// upstream rejects obviously scripted user agents.
var defaultHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36" +
		" (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "es-ES,es;q=0.9",
	"Connection":      "keep-alive",
}

// Config holds the client's immutable configuration. The zero value is
// usable: defaults are applied in NewClient.
type Config struct {
	// BaseURL overrides the production API endpoint (used in tests).
	BaseURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// RequestsPerMinute enables the sliding-window rate limiter when
	// positive. Zero disables transparent pacing.
	RequestsPerMinute int
}

// Client is the lookup client for the consultation API. It owns one
// persistent HTTP session, reused across all calls of a batch, and
// must be closed exactly once when the batch ends.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *RateLimiter
}

// NewClient creates a lookup client from cfg, applying defaults for
// unset fields.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
	if cfg.RequestsPerMinute > 0 {
		c.limiter = NewRateLimiter(cfg.RequestsPerMinute)
		logger.Info("lookup client initialised with rate limiting: %d requests/min", cfg.RequestsPerMinute)
	} else {
		logger.Info("lookup client initialised without rate limiting")
	}

	return c
}

// Close releases the client's persistent connections. Safe to defer at
// batch start; safe on every exit path.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
	logger.Debug("lookup client session closed")
}

// SearchByIdentifier issues the identifier-search call. An empty
// result set is domain.ErrNotFound, not a transport error. When the
// server returns several hits only the first is used; identifier
// search is unique enough for this domain that disambiguation is not
// worth a second round trip.
func (c *Client) SearchByIdentifier(ctx context.Context, identifier string) (*domain.CaseSummary, error) {
	q := url.Values{}
	q.Set("numero", identifier)
	q.Set("SoloActivos", "false")
	q.Set("pagina", "1")
	reqURL := c.baseURL + searchPath + "?" + q.Encode()

	logger.Debug("searching identifier %s", identifier)

	var payload searchResponse
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, err
	}

	if len(payload.Procesos) == 0 {
		logger.Warn("no case found for identifier %s", identifier)
		return nil, domain.ErrNotFound
	}

	summary := payload.Procesos[0].toDomain()
	logger.Info("case found for identifier %s (process id %d, private=%t)",
		identifier, summary.ProcessID, summary.Private)
	return &summary, nil
}

// FetchDetail retrieves the process detail for an internal process id.
func (c *Client) FetchDetail(ctx context.Context, processID int64) (*domain.CaseDetail, error) {
	reqURL := c.baseURL + detailPath + "/" + strconv.FormatInt(processID, 10)

	logger.Debug("fetching detail for process id %d", processID)

	var payload detailResponse
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		logger.Warn("detail fetch failed for process id %d: %v", processID, err)
		return nil, err
	}

	detail := payload.toDomain()
	logger.Info("detail fetched for process id %d", processID)
	return &detail, nil
}

// FetchDocket retrieves one page of the docket for an internal process
// id. Absence of docket data is non-fatal to callers; they degrade to
// placeholders.
func (c *Client) FetchDocket(ctx context.Context, processID int64, page int) (*domain.Docket, error) {
	if page <= 0 {
		page = 1
	}
	reqURL := c.baseURL + docketPath + "/" + strconv.FormatInt(processID, 10) +
		"?pagina=" + strconv.Itoa(page)

	logger.Debug("fetching docket for process id %d (page %d)", processID, page)

	var payload docketResponse
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		logger.Warn("docket fetch failed for process id %d: %v", processID, err)
		return nil, err
	}

	docket := payload.toDomain()
	logger.Info("docket fetched for process id %d (%d entries)", processID, len(docket.Entries))
	return &docket, nil
}

// getJSON performs a rate-limited GET and decodes the JSON body into
// out, classifying every expected failure mode.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(err, reqURL)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		logger.Warn("resource not found (404): %s", reqURL)
		return &APIError{StatusCode: resp.StatusCode, URL: reqURL}
	case resp.StatusCode == http.StatusTooManyRequests:
		logger.Warn("rate limited by upstream (429): %s", reqURL)
		return &APIError{StatusCode: resp.StatusCode, URL: reqURL}
	case resp.StatusCode >= 400:
		logger.Error("API error %d: %s", resp.StatusCode, reqURL)
		return &APIError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(err, reqURL)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.Error("malformed JSON from %s: %v", reqURL, err)
		return &RequestError{Reason: ReasonMalformed, URL: reqURL, Err: err}
	}

	return nil
}

// classifyTransportError maps transport failures to their Reason.
func classifyTransportError(err error, reqURL string) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		logger.Error("request timed out: %s", reqURL)
		return &RequestError{Reason: ReasonTimeout, URL: reqURL, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Error("request timed out: %s", reqURL)
		return &RequestError{Reason: ReasonTimeout, URL: reqURL, Err: err}
	}

	logger.Error("connection failed: %s: %v", reqURL, err)
	return &RequestError{Reason: ReasonConnection, URL: reqURL, Err: err}
}
