package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"transport-admin/models"
)

func (c *Client) ListTrips(ctx context.Context, driverID int64) ([]models.Trip, error) {
	query := url.Values{}
	if driverID != 0 {
		query.Set("driver_id", strconv.FormatInt(driverID, 10))
	}
	var trips []models.Trip
	if err := c.get(ctx, "/trips", query, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *Client) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	var trip models.Trip
	if err := c.get(ctx, fmt.Sprintf("/trips/%d", id), nil, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (c *Client) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	var created models.Trip
	if err := c.post(ctx, "/trips", trip, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTripStatus(ctx context.Context, id int64, status string) (*models.Trip, error) {
	body := map[string]string{"status": status}
	var updated models.Trip
	if err := c.patch(ctx, fmt.Sprintf("/trips/%d/status", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) CompleteTrip(ctx context.Context, id int64) (*models.Trip, error) {
	var completed models.Trip
	if err := c.put(ctx, fmt.Sprintf("/trips/%d/complete", id), nil, &completed); err != nil {
		return nil, err
	}
	return &completed, nil
}
