package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/mkarev/userhub/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, token: strings.TrimSpace(cfg.Token)}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("register decode response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.LoginRequest) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login/")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("login decode response: %w", err)
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, page models.UserListRequest) (models.UserListResponse, error) {
	resp, err := h.authorized().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page.Page)).
		SetQueryParam("size", strconv.Itoa(page.Size)).
		Get("/users/")
	if err != nil {
		return models.UserListResponse{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserListResponse{}, err
	}

	var list models.UserListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.UserListResponse{}, fmt.Errorf("list users decode response: %w", err)
	}

	return list, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	resp, err := h.authorized().
		SetContext(ctx).
		Get("/users/" + id.String())
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("get user decode response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id uuid.UUID) error {
	resp, err := h.authorized().
		SetContext(ctx).
		Delete("/users/" + id.String())
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) VerifyUser(ctx context.Context, id uuid.UUID) error {
	resp, err := h.authorized().
		SetContext(ctx).
		Post("/users/" + id.String() + "/verify")
	if err != nil {
		return fmt.Errorf("verify user request: %w", err)
	}

	return mapHTTPError(resp)
}

// authorized returns a request with the stored bearer token attached.
func (h *httpServerAdapter) authorized() *resty.Request {
	req := h.client.R()
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
