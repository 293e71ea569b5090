package backend

import (
	"context"
	"fmt"
	"net/url"

	"transport-admin/models"
)

// Me calls the backend's whoami endpoint for the stored token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", role)
	}
	var users []models.User
	if err := c.get(ctx, "/users", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	if err := c.post(ctx, "/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, user *models.User) (*models.User, error) {
	var updated models.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// UpdateUserRole hits the dedicated role-change endpoint.
func (c *Client) UpdateUserRole(ctx context.Context, id int64, role string) (*models.User, error) {
	body := map[string]string{"role": role}
	var updated models.User
	if err := c.patch(ctx, fmt.Sprintf("/users/%d/role", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
