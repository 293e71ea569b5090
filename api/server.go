package api

import (
	"transport-admin/auth"
	"transport-admin/backend"
	"transport-admin/cache"
	"transport-admin/events"
	"transport-admin/tracking"
)

// Server bundles every dependency the handlers need. All collaborators
// are injected; handlers hold no package-level state.
type Server struct {
	Backend   *backend.Client
	Session   *auth.Session
	Dashboard tracking.DashboardProvider
	Tracker   *tracking.Tracker
	Store     *tracking.Store
	Fences    *tracking.GeofenceIndex
	Live      *cache.LiveIndex
	Hub       *tracking.Hub
	Publisher events.Publisher
}
