package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

// ListUsers performs GET /api/usuarios?page=&size=. Paging is server-side;
// the response carries the page envelope the table viewer displays.
func (c *Client) ListUsers(ctx context.Context, page, size int) (*pkgapi.PageResponse[models.User], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var resp pkgapi.PageResponse[models.User]
	if err := c.doRequest(ctx, http.MethodGet, "/api/usuarios", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	return &resp, nil
}

// GetUser performs GET /api/usuarios/{id}.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/api/usuarios/%s", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &user, nil
}

// UpdateUser performs PUT /api/usuarios/{id}.
func (c *Client) UpdateUser(ctx context.Context, id string, req pkgapi.UserUpdateRequest) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/api/usuarios/%s", id)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, req, &user); err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &user, nil
}

// DeleteUser performs DELETE /api/usuarios/{id}.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/usuarios/%s", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete user request failed: %w", err)
	}
	return nil
}
