package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"transport-admin/models"
)

func (c *Client) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	query := url.Values{}
	if userID != 0 {
		query.Set("user_id", strconv.FormatInt(userID, 10))
	}
	var notifications []models.Notification
	if err := c.get(ctx, "/notifications", query, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

func (c *Client) SendNotification(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	var created models.Notification
	if err := c.post(ctx, "/notifications", n, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
