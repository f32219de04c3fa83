// Package state defines the snapshot document that registry state stores
// persist and the compatibility rules for reading one back. A snapshot is
// a list of wire payloads per entity kind, produced with defaults and
// internal fields included so a later import rebuilds identical state.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blang/semver/v4"

	"cordcore/pkg/codec"
)

// FormatVersion is the snapshot document version written by this build.
// Readers accept any snapshot sharing the current major version.
const FormatVersion = "1.0.0"

// Snapshot is a point-in-time export of every interned entity.
type Snapshot struct {
	FormatVersion string          `json:"format_version"`
	CreatedAt     time.Time       `json:"created_at"`
	Users         []codec.Payload `json:"users,omitempty"`
	Roles         []codec.Payload `json:"roles,omitempty"`
	Emojis        []codec.Payload `json:"emojis,omitempty"`
	Guilds        []codec.Payload `json:"guilds,omitempty"`
}

// Empty reports whether the snapshot holds no entities.
func (s Snapshot) Empty() bool {
	return len(s.Users) == 0 && len(s.Roles) == 0 && len(s.Emojis) == 0 && len(s.Guilds) == 0
}

// CheckFormatVersion reports whether a snapshot written at version can be
// read by this build. Versions sharing the current major are compatible;
// a newer major means the snapshot layout postdates this reader, an older
// major means it predates the earliest layout still understood.
func CheckFormatVersion(version string) error {
	if version == "" {
		return fmt.Errorf("snapshot missing format version")
	}
	got, err := semver.Parse(version)
	if err != nil {
		return fmt.Errorf("parse format version %q: %w", version, err)
	}
	current := semver.MustParse(FormatVersion)
	switch {
	case got.Major == current.Major:
		return nil
	case got.Major > current.Major:
		return fmt.Errorf("snapshot format %s is newer than supported %s", version, FormatVersion)
	default:
		return fmt.Errorf("snapshot format %s predates supported %s", version, FormatVersion)
	}
}

// Store persists registry snapshots. Implementations are safe for
// concurrent use.
type Store interface {
	// Save writes the snapshot, replacing any previously saved one.
	Save(ctx context.Context, snapshot Snapshot) error
	// Load reads the last saved snapshot. The boolean reports whether one
	// was present.
	Load(ctx context.Context) (Snapshot, bool, error)
	// Close releases the backing resources.
	Close() error
}

const (
	bucketMeta   = "meta"
	bucketUsers  = "users"
	bucketRoles  = "roles"
	bucketEmojis = "emojis"
	bucketGuilds = "guilds"
)

// Buckets lists the bucket names persisted by the bucket-snapshot stores,
// in persist order.
func Buckets() []string {
	return []string{bucketMeta, bucketUsers, bucketRoles, bucketEmojis, bucketGuilds}
}

func (s *Snapshot) bucket(name string) *[]codec.Payload {
	switch name {
	case bucketUsers:
		return &s.Users
	case bucketRoles:
		return &s.Roles
	case bucketEmojis:
		return &s.Emojis
	case bucketGuilds:
		return &s.Guilds
	}
	return nil
}

type metaDocument struct {
	FormatVersion string    `json:"format_version"`
	CreatedAt     time.Time `json:"created_at"`
}

// EncodeBuckets serializes the snapshot into per-bucket JSON blobs keyed by
// bucket name, the row layout shared by every state store.
func EncodeBuckets(s Snapshot) (map[string][]byte, error) {
	out := make(map[string][]byte, 5)
	header, err := json.Marshal(metaDocument{FormatVersion: s.FormatVersion, CreatedAt: s.CreatedAt})
	if err != nil {
		return nil, fmt.Errorf("encode meta: %w", err)
	}
	out[bucketMeta] = header
	for _, name := range Buckets() {
		payloads := s.bucket(name)
		if payloads == nil {
			continue
		}
		data, err := json.Marshal(*payloads)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

// DecodeBuckets rebuilds a snapshot from per-bucket JSON blobs. Buckets
// this build does not know are skipped; missing buckets stay empty.
func DecodeBuckets(buckets map[string][]byte) (Snapshot, error) {
	var snap Snapshot
	if raw, ok := buckets[bucketMeta]; ok && len(raw) > 0 {
		var header metaDocument
		if err := json.Unmarshal(raw, &header); err != nil {
			return Snapshot{}, fmt.Errorf("decode meta: %w", err)
		}
		snap.FormatVersion = header.FormatVersion
		snap.CreatedAt = header.CreatedAt
	}
	for _, name := range Buckets() {
		payloads := snap.bucket(name)
		if payloads == nil {
			continue
		}
		raw, ok := buckets[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, payloads); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", name, err)
		}
	}
	return snap, nil
}
