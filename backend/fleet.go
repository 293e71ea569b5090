package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"transport-admin/models"
)

func (c *Client) ListVehicles(ctx context.Context, fleetID int64) ([]models.Vehicle, error) {
	query := url.Values{}
	if fleetID != 0 {
		query.Set("fleet_id", strconv.FormatInt(fleetID, 10))
	}
	var vehicles []models.Vehicle
	if err := c.get(ctx, "/vehicles", query, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *Client) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.get(ctx, fmt.Sprintf("/vehicles/%d", id), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	var created models.Vehicle
	if err := c.post(ctx, "/vehicles", vehicle, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateVehicle(ctx context.Context, id int64, vehicle *models.Vehicle) (*models.Vehicle, error) {
	var updated models.Vehicle
	if err := c.put(ctx, fmt.Sprintf("/vehicles/%d", id), vehicle, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/vehicles/%d", id))
}

func (c *Client) ListTrucks(ctx context.Context, status string) ([]models.Truck, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var trucks []models.Truck
	if err := c.get(ctx, "/trucks", query, &trucks); err != nil {
		return nil, err
	}
	return trucks, nil
}

func (c *Client) GetTruck(ctx context.Context, id int64) (*models.Truck, error) {
	var truck models.Truck
	if err := c.get(ctx, fmt.Sprintf("/trucks/%d", id), nil, &truck); err != nil {
		return nil, err
	}
	return &truck, nil
}

func (c *Client) CreateTruck(ctx context.Context, truck *models.Truck) (*models.Truck, error) {
	var created models.Truck
	if err := c.post(ctx, "/trucks", truck, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTruck(ctx context.Context, id int64, truck *models.Truck) (*models.Truck, error) {
	var updated models.Truck
	if err := c.put(ctx, fmt.Sprintf("/trucks/%d", id), truck, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTruck(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/trucks/%d", id))
}

func (c *Client) ListFleets(ctx context.Context) ([]models.Fleet, error) {
	var fleets []models.Fleet
	if err := c.get(ctx, "/fleets", nil, &fleets); err != nil {
		return nil, err
	}
	return fleets, nil
}

func (c *Client) GetFleet(ctx context.Context, id int64) (*models.Fleet, error) {
	var fleet models.Fleet
	if err := c.get(ctx, fmt.Sprintf("/fleets/%d", id), nil, &fleet); err != nil {
		return nil, err
	}
	return &fleet, nil
}

func (c *Client) CreateFleet(ctx context.Context, fleet *models.Fleet) (*models.Fleet, error) {
	var created models.Fleet
	if err := c.post(ctx, "/fleets", fleet, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateFleet(ctx context.Context, id int64, fleet *models.Fleet) (*models.Fleet, error) {
	var updated models.Fleet
	if err := c.put(ctx, fmt.Sprintf("/fleets/%d", id), fleet, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteFleet(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/fleets/%d", id))
}
