package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TokenSource supplies the bearer token for a single request. The token is
// captured per call, so rotating it never affects requests already in flight.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token for every request.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}

// Config configures the API client.
type Config struct {
	// BaseURL is the API base URL including the version prefix,
	// e.g. https://api.superbutton.app/v1.
	BaseURL string

	Timeout time.Duration

	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond float64

	// Metrics records request outcomes when set.
	Metrics *Metrics
}

// Client calls the SuperButton REST API. All request state (base URL, token
// source, limiter) is fixed at construction; there is no mutable global.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	genID      *snowflake.Node
	metrics    *Metrics
	tracer     trace.Tracer
	log        *zap.Logger

	Users        *UserService
	Projects     *ProjectService
	Whatsapp     *WhatsappIntegrationService
	Content      *ContentIntegrationService
	PhoneCalls   *PhoneCallIntegrationService
	Links        *LinkIntegrationService
	Integrations *ProjectIntegrationService
	Settings     *SettingsService
}

// New creates an API client. The token source may be nil for endpoints that
// do not require authentication.
func New(cfg Config, tokens TokenSource, log *zap.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("cannot create snowflake node: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	if log == nil {
		log = zap.NewNop()
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		limiter:    limiter,
		genID:      node,
		metrics:    cfg.Metrics,
		tracer:     otel.Tracer("superbutton/backend"),
		log:        log.Named("backend"),
	}

	c.Users = &UserService{client: c}
	c.Projects = &ProjectService{client: c}
	c.Whatsapp = &WhatsappIntegrationService{client: c}
	c.Content = &ContentIntegrationService{client: c}
	c.PhoneCalls = &PhoneCallIntegrationService{client: c}
	c.Links = &LinkIntegrationService{client: c}
	c.Integrations = &ProjectIntegrationService{client: c}
	c.Settings = &SettingsService{client: c}

	return c, nil
}

// do performs one API request and decodes the response envelope into out.
// Non-2xx answers return a *ResponseError carrying the normalized backend
// payload.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("cannot create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", c.genID.Generate().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("cannot resolve bearer token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	req = req.WithContext(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "transport failure")
		c.metrics.record(method, 0, time.Since(start))
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("cannot call [%s %s]: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.Int("http.status_code", resp.StatusCode),
	)
	c.metrics.record(method, resp.StatusCode, time.Since(start))

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, strconv.Itoa(resp.StatusCode))
		c.log.Debug("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return newResponseError(resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("cannot unmarshal response into %T: %w", out, err)
	}
	return nil
}
