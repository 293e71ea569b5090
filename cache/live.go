package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"

	"transport-admin/models"
)

// cellPrecision gives ~5 km cells, wide enough that a cell plus its
// neighbors covers any nearby-vehicle query.
const cellPrecision = 5

const lastCellKey = "vehicles:last_cell"

// Cell returns the geohash cell key for a coordinate.
func Cell(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, cellPrecision)
}

// LiveIndex keeps the latest position of every truck in Redis: one set of
// truck ids per geohash cell plus the last ping per truck.
type LiveIndex struct {
	rdb *redis.Client
}

func NewLiveIndex(rdb *redis.Client) *LiveIndex {
	return &LiveIndex{rdb: rdb}
}

func cellKey(cell string) string {
	return fmt.Sprintf("vehicles:%s", cell)
}

func pingKey(truckID int64) string {
	return fmt.Sprintf("vehicle:ping:%d", truckID)
}

// Update moves the truck into the ping's cell and records the ping as its
// latest position. A nil index ignores the ping.
func (l *LiveIndex) Update(ctx context.Context, ping models.LocationPing) error {
	if l == nil {
		return nil
	}
	truckField := strconv.FormatInt(ping.TruckID, 10)

	prev, err := l.rdb.HGet(ctx, lastCellKey, truckField).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	if prev != "" && prev != ping.Geohash {
		if err := l.rdb.SRem(ctx, cellKey(prev), truckField).Err(); err != nil {
			return err
		}
	}

	pingJSON, err := json.Marshal(ping)
	if err != nil {
		return err
	}
	if err := l.rdb.SAdd(ctx, cellKey(ping.Geohash), truckField).Err(); err != nil {
		return err
	}
	if err := l.rdb.HSet(ctx, lastCellKey, truckField, ping.Geohash).Err(); err != nil {
		return err
	}
	return l.rdb.Set(ctx, pingKey(ping.TruckID), pingJSON, 0).Err()
}

// Nearby returns the latest pings of trucks in the query point's cell and
// its eight neighbors.
func (l *LiveIndex) Nearby(ctx context.Context, lat, lng float64) ([]models.LocationPing, error) {
	cell := Cell(lat, lng)
	cells := append(geohash.Neighbors(cell), cell)

	var pings []models.LocationPing
	for _, c := range cells {
		members, err := l.rdb.SMembers(ctx, cellKey(c)).Result()
		if err != nil {
			continue
		}
		for _, member := range members {
			truckID, err := strconv.ParseInt(member, 10, 64)
			if err != nil {
				continue
			}
			raw, err := l.rdb.Get(ctx, pingKey(truckID)).Result()
			if err != nil {
				continue
			}
			var ping models.LocationPing
			if err := json.Unmarshal([]byte(raw), &ping); err != nil {
				continue
			}
			pings = append(pings, ping)
		}
	}
	return pings, nil
}
