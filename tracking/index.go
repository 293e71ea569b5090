package tracking

import (
	"math"
	"sync"

	"github.com/dhconnelly/rtreego"

	"transport-admin/models"
)

// kmPerDegreeLat is the approximate north-south span of one degree.
const kmPerDegreeLat = 111.0

// GeofenceIndex answers "which active geofences contain this point" with
// an R-tree over bounding boxes followed by an exact haversine check
// against each candidate's radius.
type GeofenceIndex struct {
	mu     sync.RWMutex
	tree   *rtreego.Rtree
	fences map[int64]models.Geofence
}

type fenceEntry struct {
	id   int64
	rect rtreego.Rect
}

func (e *fenceEntry) Bounds() rtreego.Rect { return e.rect }

func NewGeofenceIndex() *GeofenceIndex {
	return &GeofenceIndex{
		tree:   rtreego.NewTree(2, 25, 50),
		fences: make(map[int64]models.Geofence),
	}
}

// Reload replaces the index contents. Called after every geofence write.
func (idx *GeofenceIndex) Reload(fences []models.Geofence) {
	tree := rtreego.NewTree(2, 25, 50)
	byID := make(map[int64]models.Geofence, len(fences))
	for _, f := range fences {
		if !f.IsActive {
			continue
		}
		rect, err := boundingRect(f)
		if err != nil {
			continue
		}
		tree.Insert(&fenceEntry{id: f.ID, rect: rect})
		byID[f.ID] = f
	}

	idx.mu.Lock()
	idx.tree = tree
	idx.fences = byID
	idx.mu.Unlock()
}

// Containing returns every active geofence whose circle covers the point.
func (idx *GeofenceIndex) Containing(lat, lng float64) []models.Geofence {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	point := rtreego.Point{lat, lng}
	var hits []models.Geofence
	for _, candidate := range idx.tree.SearchIntersect(point.ToRect(1e-6)) {
		entry, ok := candidate.(*fenceEntry)
		if !ok {
			continue
		}
		fence := idx.fences[entry.id]
		if HaversineKm(lat, lng, fence.CenterLat, fence.CenterLng) <= fence.RadiusKm {
			hits = append(hits, fence)
		}
	}
	return hits
}

// boundingRect converts the circle to a lat/lng-aligned box. Longitude
// degrees shrink with latitude; the cosine is floored so fences near the
// poles still get a finite box.
func boundingRect(f models.Geofence) (rtreego.Rect, error) {
	dLat := f.RadiusKm / kmPerDegreeLat
	cosLat := math.Cos(f.CenterLat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLng := f.RadiusKm / (kmPerDegreeLat * cosLat)
	return rtreego.NewRect(
		rtreego.Point{f.CenterLat - dLat, f.CenterLng - dLng},
		[]float64{2 * dLat, 2 * dLng},
	)
}
