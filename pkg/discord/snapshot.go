package discord

import (
	"slices"
	"time"

	"cordcore/pkg/codec"
	"cordcore/pkg/state"
)

// ExportSnapshot serializes every interned entity into a snapshot document,
// one wire payload per entity with defaults and internal fields included.
// Payload lists are ordered by identifier so exports diff cleanly.
func (r *Registry) ExportSnapshot() state.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return state.Snapshot{
		FormatVersion: state.FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Users:         exportPayloads(r.users, (*User).ToData),
		Roles:         exportPayloads(r.roles, (*Role).ToData),
		Emojis:        exportPayloads(r.emojis, (*Emoji).ToData),
		Guilds:        exportPayloads(r.guilds, (*Guild).ToData),
	}
}

func exportPayloads[E any](entities map[Snowflake]*E, toData func(*E, bool, bool) codec.Payload) []codec.Payload {
	if len(entities) == 0 {
		return nil
	}
	ids := make([]Snowflake, 0, len(entities))
	for id := range entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]codec.Payload, 0, len(ids))
	for _, id := range ids {
		out = append(out, toData(entities[id], true, true))
	}
	return out
}

// ImportSnapshot replays a snapshot through the wire parsers, re-interning
// every entity by identifier. Entities already interned hydrate in place,
// so pointers held across an export/import cycle keep resolving to the
// refreshed state. Snapshots from an incompatible format major are
// rejected before any entity is touched.
func (r *Registry) ImportSnapshot(snapshot state.Snapshot) error {
	if err := state.CheckFormatVersion(snapshot.FormatVersion); err != nil {
		return err
	}
	// Users go first so emoji uploaders resolve against hydrated entries,
	// then standalone roles and emojis, then guilds re-linking both.
	for _, data := range snapshot.Users {
		r.UserFromData(data)
	}
	for _, data := range snapshot.Roles {
		r.RoleFromData(data, 0)
	}
	for _, data := range snapshot.Emojis {
		r.EmojiFromData(data, 0)
	}
	for _, data := range snapshot.Guilds {
		r.GuildFromData(data)
	}
	return nil
}
