package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"transport-admin/models"
)

// Store persists the tracking subsystem's own data: location pings,
// geofences and geofence alerts.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertPing(ctx context.Context, ping *models.LocationPing) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO location_pings (id, truck_id, driver_id, latitude, longitude, speed_kmh, geohash, pinged_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ping.ID, ping.TruckID, ping.DriverID, ping.Latitude, ping.Longitude, ping.SpeedKmh, ping.Geohash, ping.PingedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ping: %w", err)
	}
	return nil
}

func (s *Store) RecentPings(ctx context.Context, limit int) ([]models.LocationPing, error) {
	var pings []models.LocationPing
	err := s.db.SelectContext(ctx, &pings,
		`SELECT id, truck_id, driver_id, latitude, longitude, speed_kmh, geohash, pinged_at
		 FROM location_pings ORDER BY pinged_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pings, nil
}

// ActiveTruckCount counts trucks that pinged within the window.
func (s *Store) ActiveTruckCount(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(DISTINCT truck_id) FROM location_pings WHERE pinged_at >= $1`, since)
	return count, err
}

// TruckCount counts every truck that has ever pinged.
func (s *Store) TruckCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(DISTINCT truck_id) FROM location_pings`)
	return count, err
}

func (s *Store) InsertAlert(ctx context.Context, alert *models.GeofenceAlert) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO geofence_alerts (id, geofence_id, truck_id, alert_type, latitude, longitude, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		alert.ID, alert.GeofenceID, alert.TruckID, alert.AlertType, alert.Latitude, alert.Longitude, alert.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (s *Store) RecentAlerts(ctx context.Context, since time.Time, limit int) ([]models.GeofenceAlert, error) {
	var alerts []models.GeofenceAlert
	err := s.db.SelectContext(ctx, &alerts,
		`SELECT id, geofence_id, truck_id, alert_type, latitude, longitude, occurred_at
		 FROM geofence_alerts WHERE occurred_at >= $1 ORDER BY occurred_at DESC LIMIT $2`, since, limit)
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *Store) ListGeofences(ctx context.Context, activeOnly bool) ([]models.Geofence, error) {
	query := `SELECT id, name, center_lat, center_lng, radius_km, is_active, created_at, updated_at FROM geofences`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY id`

	var fences []models.Geofence
	if err := s.db.SelectContext(ctx, &fences, query); err != nil {
		return nil, err
	}
	return fences, nil
}

func (s *Store) CreateGeofence(ctx context.Context, fence *models.Geofence) error {
	return s.db.QueryRowContext(ctx,
		`INSERT INTO geofences (name, center_lat, center_lng, radius_km, is_active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
		fence.Name, fence.CenterLat, fence.CenterLng, fence.RadiusKm, fence.IsActive,
	).Scan(&fence.ID, &fence.CreatedAt, &fence.UpdatedAt)
}

func (s *Store) UpdateGeofence(ctx context.Context, fence *models.Geofence) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE geofences SET name=$1, center_lat=$2, center_lng=$3, radius_km=$4, is_active=$5, updated_at=NOW()
		 WHERE id=$6`,
		fence.Name, fence.CenterLat, fence.CenterLng, fence.RadiusKm, fence.IsActive, fence.ID,
	)
	if err != nil {
		return fmt.Errorf("update geofence: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteGeofence(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM geofences WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete geofence: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
