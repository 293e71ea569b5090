package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"transport-admin/models"
)

func (c *Client) ListPayments(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	query := url.Values{}
	if bookingID != 0 {
		query.Set("booking_id", strconv.FormatInt(bookingID, 10))
	}
	var payments []models.Payment
	if err := c.get(ctx, "/payments", query, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment
	if err := c.get(ctx, fmt.Sprintf("/payments/%d", id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	var created models.Payment
	if err := c.post(ctx, "/payments", payment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*models.Payment, error) {
	var updated models.Payment
	body := map[string]string{"status": status}
	if err := c.patch(ctx, fmt.Sprintf("/payments/%d/status", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
