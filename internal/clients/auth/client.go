package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
	"github.com/Rasamaha24/m5-advocate-portal/pkg/transport"
)

const (
	retryAttempts = 2
	retryWaitMin  = 200 * time.Millisecond
	retryWaitMax  = time.Second
)

// Client resolves bearer tokens into portal users against the identity
// service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryAttempts
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = time.Second
	retryClient.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		baseURL: baseURL,
		http:    retryClient.StandardClient(),
	}
}

type ValidateTokenRequest struct {
	Token string `json:"accessToken"`
}

type ValidateTokenResponse struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Email     string    `json:"email"`
}

func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(ValidateTokenRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.User{}, entity.ErrUnauthenticated
	default:
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data ValidateTokenResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.User{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
	}, nil
}
