// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/monthlog/models"
)

const (
	CatalogPath = "/api/v1/explorer/home/cms"
	LoginPath   = "/login"
	SignupPath  = "/signup"
)

var ErrCityNotFound = errors.New("city not found")

// CityNotFoundError is returned when no catalog entry matches a slug
type CityNotFoundError struct {
	Slug string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("city not found: %q", e.Slug)
}

func (e *CityNotFoundError) Is(target error) bool {
	return target == ErrCityNotFound
}

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

// Client talks to the Monthlog API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithToken sets the session token sent as a bearer credential
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the session token from the last successful Login
func (c *Client) Token() string {
	return c.token
}

// FetchCatalog handles GET /api/v1/explorer/home/cms
func (c *Client) FetchCatalog(ctx context.Context) (*models.HomeCMSResponse, error) {
	var resp models.HomeCMSResponse
	if err := c.do(ctx, http.MethodGet, CatalogPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch city catalog: %w", err)
	}
	return &resp, nil
}

// ResolveCityID finds the numeric city id for slug (case-insensitive exact match)
func (c *Client) ResolveCityID(ctx context.Context, slug string) (int64, error) {
	catalog, err := c.FetchCatalog(ctx)
	if err != nil {
		return 0, err
	}
	for _, city := range catalog.Cities {
		if strings.EqualFold(city.Slug, slug) {
			return city.ID, nil
		}
	}
	return 0, &CityNotFoundError{Slug: slug}
}

// SubmitContribution resolves citySlug then posts payload to that city.
// The mutation is never sent if resolution fails. There is no retry.
func (c *Client) SubmitContribution(ctx context.Context, citySlug string, payload models.ContributionPayload) (*models.ContributionResponse, error) {
	cityID, err := c.ResolveCityID(ctx, citySlug)
	if err != nil {
		return nil, err
	}

	var resp models.ContributionResponse
	if err := c.do(ctx, http.MethodPost, ContributionPath(cityID), payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to submit contribution for %s: %w", citySlug, err)
	}

	c.logger.Info("contribution submitted",
		"city", citySlug,
		"city_id", cityID,
		"contribution_id", resp.ContributionID,
	)
	return &resp, nil
}

// Login handles POST /login and keeps the returned session token
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, LoginPath, req, &user); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	c.token = user.Token
	return &user, nil
}

// Signup handles POST /signup and keeps the returned session token
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, SignupPath, req, &user); err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	c.token = user.Token
	return &user, nil
}

// GetCity fetches a city and its aggregated stats by slug.
// A 404 from the API is reported as *CityNotFoundError.
func (c *Client) GetCity(ctx context.Context, slug string) (*models.CityDetailResponse, error) {
	var resp models.CityDetailResponse
	err := c.do(ctx, http.MethodGet, CityPath(slug), nil, &resp)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, &CityNotFoundError{Slug: slug}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch city %q: %w", slug, err)
	}
	return &resp, nil
}

// CityPath is the detail endpoint for a city slug
func CityPath(slug string) string {
	return "/api/v1/cities/" + url.PathEscape(strings.ToLower(slug))
}

// ContributionPath is the mutation endpoint for a city
func ContributionPath(cityID int64) string {
	return "/api/v1/cities/" + strconv.FormatInt(cityID, 10) + "/contributions"
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", req.Header.Get("X-Request-ID"),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			apiErr.Message = errResp.Message
			apiErr.Details = errResp.Details
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
