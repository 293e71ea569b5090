package tracking

import (
	"context"
	"testing"
	"time"
)

func TestStaticProvider_Shape(t *testing.T) {
	provider := &StaticProvider{}
	data, err := provider.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if data.TotalTrucks != data.ActiveTrucks+data.IdleTrucks {
		t.Fatalf("counts must add up: %+v", data)
	}
	if len(data.RecentLocations) == 0 || len(data.GeofenceAlerts) == 0 {
		t.Fatalf("fixture must carry locations and alerts")
	}
	if data.GeneratedAt.IsZero() {
		t.Fatalf("missing generated_at")
	}
}

func TestStaticProvider_DelayRespectsContext(t *testing.T) {
	provider := &StaticProvider{Delay: 5 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, err := provider.Dashboard(ctx); err == nil {
		t.Fatalf("expected context error")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancellation should interrupt the artificial delay")
	}
}
