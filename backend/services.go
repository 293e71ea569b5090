package backend

import (
	"context"
	"net/url"
	"strconv"

	"transport-admin/models"
)

func (c *Client) ListMaintenanceRecords(ctx context.Context, vehicleID int64) ([]models.MaintenanceRecord, error) {
	query := url.Values{}
	if vehicleID != 0 {
		query.Set("vehicle_id", strconv.FormatInt(vehicleID, 10))
	}
	var records []models.MaintenanceRecord
	if err := c.get(ctx, "/services/maintenance", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	var created models.MaintenanceRecord
	if err := c.post(ctx, "/services/maintenance", record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListParts(ctx context.Context) ([]models.Part, error) {
	var parts []models.Part
	if err := c.get(ctx, "/services/parts", nil, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (c *Client) CreatePart(ctx context.Context, part *models.Part) (*models.Part, error) {
	var created models.Part
	if err := c.post(ctx, "/services/parts", part, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CostAnalysis(ctx context.Context, vehicleID int64) (*models.CostAnalysis, error) {
	query := url.Values{}
	query.Set("vehicle_id", strconv.FormatInt(vehicleID, 10))
	var analysis models.CostAnalysis
	if err := c.get(ctx, "/services/cost-analysis", query, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *Client) AnalyticsSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	var summary models.AnalyticsSummary
	if err := c.get(ctx, "/analytics/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
