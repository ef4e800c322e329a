// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package cache

import (
	"math"
	"sync"
)

const (
	earthRadiusKm = 6371.0
	kmPerDegree   = 111.0
)

// SpatialGrid buckets points into lat/lon cells so radius queries only visit
// nearby cells instead of every point.
//
//   - Insert/Remove: O(1) amortized
//   - Within: O(k) for k points in the covered cells
//
// Example usage:
//
//	grid := cache.NewSpatialGrid(25)
//	grid.Insert("alice", 52.52, 13.40)
//	nearby := grid.Within(52.50, 13.45, 50) // IDs within 50 km
type SpatialGrid struct {
	mu       sync.RWMutex
	cells    map[cellKey][]*GridPoint
	points   map[string]*GridPoint
	cellSize float64 // degrees
}

type cellKey struct {
	X, Y int
}

// GridPoint is a located ID. Returned points are copies.
type GridPoint struct {
	ID  string
	Lat float64
	Lon float64

	cell cellKey
}

// NewSpatialGrid creates a grid with roughly cellSizeKm wide cells.
func NewSpatialGrid(cellSizeKm float64) *SpatialGrid {
	if cellSizeKm <= 0 {
		cellSizeKm = 25
	}
	return &SpatialGrid{
		cells:    make(map[cellKey][]*GridPoint),
		points:   make(map[string]*GridPoint),
		cellSize: cellSizeKm / kmPerDegree,
	}
}

func (g *SpatialGrid) keyFor(lat, lon float64) cellKey {
	lon = normalizeLon(lon)
	return cellKey{
		X: int(math.Floor(lon / g.cellSize)),
		Y: int(math.Floor(lat / g.cellSize)),
	}
}

// Insert adds or moves id to (lat, lon).
func (g *SpatialGrid) Insert(id string, lat, lon float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if old, ok := g.points[id]; ok {
		g.unlink(old)
	}
	p := &GridPoint{ID: id, Lat: lat, Lon: lon, cell: g.keyFor(lat, lon)}
	g.cells[p.cell] = append(g.cells[p.cell], p)
	g.points[id] = p
}

// Remove deletes id, reporting whether it was present.
func (g *SpatialGrid) Remove(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.points[id]
	if !ok {
		return false
	}
	g.unlink(p)
	delete(g.points, id)
	return true
}

// unlink removes p from its cell. Lock held.
func (g *SpatialGrid) unlink(p *GridPoint) {
	cell := g.cells[p.cell]
	for i, e := range cell {
		if e.ID == p.ID {
			cell[i] = cell[len(cell)-1]
			cell = cell[:len(cell)-1]
			break
		}
	}
	if len(cell) == 0 {
		delete(g.cells, p.cell)
	} else {
		g.cells[p.cell] = cell
	}
}

// Get returns the point for id.
func (g *SpatialGrid) Get(id string) (GridPoint, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.points[id]
	if !ok {
		return GridPoint{}, false
	}
	return *p, true
}

// Within returns the IDs of all points at most radiusKm from (lat, lon),
// measured with the haversine distance.
func (g *SpatialGrid) Within(lat, lon, radiusKm float64) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if radiusKm < 0 {
		return nil
	}

	dy := int(math.Ceil(radiusKm/kmPerDegree/g.cellSize)) + 1
	// longitude degrees shrink towards the poles
	cosLat := math.Cos((math.Abs(lat) + radiusKm/kmPerDegree) * math.Pi / 180)
	dx := math.MaxInt32
	if cosLat > 0.01 {
		dx = int(math.Ceil(radiusKm/(kmPerDegree*cosLat)/g.cellSize)) + 1
	}

	// Scanning every point is cheaper once the box covers more cells than exist.
	// The cell walk does not wrap at the antimeridian either.
	if dx >= int(180/g.cellSize) ||
		math.Abs(normalizeLon(lon))+float64(dx)*g.cellSize >= 180 ||
		(2*dx+1)*(2*dy+1) > len(g.cells) {
		return g.scan(lat, lon, radiusKm)
	}

	center := g.keyFor(lat, lon)
	var ids []string
	for x := center.X - dx; x <= center.X+dx; x++ {
		for y := center.Y - dy; y <= center.Y+dy; y++ {
			for _, p := range g.cells[cellKey{X: x, Y: y}] {
				if HaversineKm(lat, lon, p.Lat, p.Lon) <= radiusKm {
					ids = append(ids, p.ID)
				}
			}
		}
	}
	return ids
}

func (g *SpatialGrid) scan(lat, lon, radiusKm float64) []string {
	var ids []string
	for _, p := range g.points {
		if HaversineKm(lat, lon, p.Lat, p.Lon) <= radiusKm {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Size returns the number of points.
func (g *SpatialGrid) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.points)
}

// Clear removes all points.
func (g *SpatialGrid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells = make(map[cellKey][]*GridPoint)
	g.points = make(map[string]*GridPoint)
}

// HaversineKm returns the great-circle distance in kilometres.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const rad = math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func normalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}
