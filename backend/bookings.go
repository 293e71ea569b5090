package backend

import (
	"context"
	"fmt"
	"net/url"

	"transport-admin/models"
)

func (c *Client) ListBookings(ctx context.Context, status string) ([]models.Booking, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var bookings []models.Booking
	if err := c.get(ctx, "/bookings", query, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	var created models.Booking
	if err := c.post(ctx, "/bookings", booking, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id int64, booking *models.Booking) (*models.Booking, error) {
	var updated models.Booking
	if err := c.put(ctx, fmt.Sprintf("/bookings/%d", id), booking, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status string) (*models.Booking, error) {
	var updated models.Booking
	body := map[string]string{"status": status}
	if err := c.patch(ctx, fmt.Sprintf("/bookings/%d/status", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/bookings/%d", id))
}
