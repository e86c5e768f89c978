// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
)

var _ DirectoryInterface = (*Client)(nil)

// Client talks to the directory gateway over its JSON API. A 404 on user
// lookup is absence, not an error; every other non-2xx response surfaces the
// gateway's message verbatim so validation reports carry it unchanged.
type Client struct {
	endpoint string
	tenant   string
	client   *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) FindUser(ctx context.Context, login string) (*User, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.FindUser")
	defer span.End()

	user := new(User)
	found, err := c.get(ctx, "/api/v1/users/"+url.PathEscape(login), user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return user, nil
}

func (c *Client) EnsureUser(ctx context.Context, login string) (*User, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.EnsureUser")
	defer span.End()

	req, err := c.newRequest(ctx, http.MethodPut, "/api/v1/users/"+url.PathEscape(login))
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.apiError(resp)
	}

	user := new(User)
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}
	return user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*User, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ListUsers")
	defer span.End()

	var users []*User
	if _, err := c.get(ctx, "/api/v1/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListGroups(ctx context.Context) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ListGroups")
	defer span.End()

	var groups []string
	if _, err := c.get(ctx, "/api/v1/groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) ListGroupMembers(ctx context.Context, groupName string) ([]*User, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ListGroupMembers")
	defer span.End()

	var users []*User
	if _, err := c.get(ctx, "/api/v1/groups/"+url.PathEscape(groupName)+"/members", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// get decodes a 2xx response into out and reports 404 as (false, nil).
func (c *Client) get(ctx context.Context, path string, out interface{}) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path)
	if err != nil {
		return false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, c.apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode directory response: %w", err)
	}
	return true, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.tenant != "" {
		query := req.URL.Query()
		query.Set("tenant", c.tenant)
		req.URL.RawQuery = query.Encode()
	}
	return req, nil
}

// apiError prefers the gateway's own message so callers can surface it
// verbatim.
func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	payload := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%s", payload.Message)
	}
	return fmt.Errorf("directory returned status %d", resp.StatusCode)
}

func NewClient(
	endpoint, tenant string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Client {
	c := new(Client)

	c.endpoint = endpoint
	c.tenant = tenant
	c.client = &http.Client{Timeout: 30 * time.Second}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
