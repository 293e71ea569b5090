package backend

import (
	"context"
	"fmt"
	"net/url"

	"transport-admin/models"
)

func (c *Client) ListDispatches(ctx context.Context, status string) ([]models.Dispatch, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var dispatches []models.Dispatch
	if err := c.get(ctx, "/dispatches", query, &dispatches); err != nil {
		return nil, err
	}
	return dispatches, nil
}

func (c *Client) GetDispatch(ctx context.Context, id int64) (*models.Dispatch, error) {
	var dispatch models.Dispatch
	if err := c.get(ctx, fmt.Sprintf("/dispatches/%d", id), nil, &dispatch); err != nil {
		return nil, err
	}
	return &dispatch, nil
}

func (c *Client) CreateDispatch(ctx context.Context, dispatch *models.Dispatch) (*models.Dispatch, error) {
	var created models.Dispatch
	if err := c.post(ctx, "/dispatches", dispatch, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignDispatch attaches a driver and truck to an open dispatch.
func (c *Client) AssignDispatch(ctx context.Context, id, driverID, truckID int64) (*models.Dispatch, error) {
	body := map[string]int64{"driver_id": driverID, "truck_id": truckID}
	var updated models.Dispatch
	if err := c.patch(ctx, fmt.Sprintf("/dispatches/%d/assign", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateDispatchStatus(ctx context.Context, id int64, status string) (*models.Dispatch, error) {
	body := map[string]string{"status": status}
	var updated models.Dispatch
	if err := c.patch(ctx, fmt.Sprintf("/dispatches/%d/status", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
