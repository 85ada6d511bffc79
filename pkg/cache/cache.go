// Package cache stores rendered hemicycle artifacts and published diagrams.
//
// Every backend implements [Cache]. The CLI defaults to [FileCache] under
// the user's cache directory, the HTTP server usually runs against
// [RedisCache] or [MongoCache] so that several instances share diagrams,
// and [NullCache] disables caching altogether.
//
// Keys are built by a [Keyer] so that every component agrees on the shape
// of a key for the same inputs:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(layoutHash, cache.ArtifactKeyOpts{Format: "svg", Width: 800})
//
// All backends namespace their entries with [KeyPrefix] so that [Clearer]
// implementations never touch foreign data sharing the same store.
package cache

import (
	"context"
	"time"
)

// KeyPrefix prefixes every key written by a [Keyer].
const KeyPrefix = "hemicycle:"

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero keeps the entry until it is
	// deleted or cleared.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases connections held by the backend.
	Close() error
}

// Clearer is implemented by backends that can drop all hemicycle entries.
type Clearer interface {
	// Clear removes every entry written under [KeyPrefix] and returns how
	// many were removed.
	Clear(ctx context.Context) (int, error)
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey identifies a computed layout and seating plan.
	LayoutKey(groupsHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string

	// DiagramKey identifies a diagram published through the HTTP API.
	DiagramKey(id string) string
}

// LayoutKeyOpts are the geometry parameters that change a layout.
type LayoutKeyOpts struct {
	Angle        float64 `json:"angle"`
	RadiusRatio  float64 `json:"radius_ratio"`
	RowConnected bool    `json:"row_connected"`
}

// ArtifactKeyOpts are the rendering parameters that change an artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Width     float64 `json:"width,omitempty"`
	SeatScale float64 `json:"seat_scale,omitempty"`
	Legend    bool    `json:"legend,omitempty"`
	Labels    bool    `json:"labels,omitempty"`
	Title     string  `json:"title,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
	Engine    string  `json:"engine,omitempty"`
}

// DefaultKeyer builds keys of the form "hemicycle:<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(groupsHash string, opts LayoutKeyOpts) string {
	return hashKey(KeyPrefix+"layout", groupsHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyPrefix+"artifact", layoutHash, opts)
}

// DiagramKey implements [Keyer]. Diagram ids are already unique so they
// are not hashed.
func (DefaultKeyer) DiagramKey(id string) string {
	return KeyPrefix + "diagram:" + id
}

var _ Keyer = DefaultKeyer{}
