package backend

import (
	"context"
	"fmt"
	"net/url"

	"transport-admin/models"
)

func (c *Client) ListDrivers(ctx context.Context, status string) ([]models.Driver, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var drivers []models.Driver
	if err := c.get(ctx, "/drivers", query, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (c *Client) GetDriver(ctx context.Context, id int64) (*models.Driver, error) {
	var driver models.Driver
	if err := c.get(ctx, fmt.Sprintf("/drivers/%d", id), nil, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (c *Client) CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	var created models.Driver
	if err := c.post(ctx, "/drivers", driver, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDriver(ctx context.Context, id int64, driver *models.Driver) (*models.Driver, error) {
	var updated models.Driver
	if err := c.put(ctx, fmt.Sprintf("/drivers/%d", id), driver, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteDriver(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/drivers/%d", id))
}

func (c *Client) UpdateDriverStatus(ctx context.Context, id int64, status string) (*models.Driver, error) {
	body := map[string]string{"status": status}
	var updated models.Driver
	if err := c.patch(ctx, fmt.Sprintf("/drivers/%d/status", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateDriverLocation(ctx context.Context, id int64, lat, lng float64) (*models.Driver, error) {
	body := map[string]float64{"latitude": lat, "longitude": lng}
	var updated models.Driver
	if err := c.patch(ctx, fmt.Sprintf("/drivers/%d/location", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
