package audit

import (
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"

	"cordcore/pkg/codec"
	"cordcore/pkg/discord"
)

// Field codecs for the entry schema. The guild binding and the entry's own
// identifier are internal; Discord derives both from the request path.
var (
	fieldEntryID       = codec.EntityID[discord.Snowflake]("id")
	fieldEntryGuildID  = codec.EntityID[discord.Snowflake]("guild_id")
	fieldEntryUserID   = codec.OptionalEntityID[discord.Snowflake]("user_id")
	fieldEntryTargetID = codec.OptionalEntityID[discord.Snowflake]("target_id")
	fieldEntryAction   = codec.Enum[Event]("action_type", 0)
	fieldEntryReason   = codec.NullableString("reason")
)

// Entry is one audit log record: who did what to which target, with the
// per-attribute changes assembled through the event's conversion table.
// Fragments naming the same attribute merge instead of overwriting each
// other, so an attribute's change accumulates every side any fragment saw.
type Entry struct {
	ID         discord.Snowflake
	GuildID    discord.Snowflake
	UserID     discord.Snowflake
	TargetID   discord.Snowflake
	ActionType Event
	Reason     string
	Changes    map[string]Change
}

// EntryFromData builds an entry from a wire payload. Entry payloads inside
// an audit log response do not carry their guild; the owning parse supplies
// it.
func EntryFromData(data codec.Payload, guildID discord.Snowflake) *Entry {
	entry := &Entry{}
	entry.ID = fieldEntryID.Parse(data)
	if guildID != 0 {
		entry.GuildID = guildID
	} else {
		entry.GuildID = fieldEntryGuildID.Parse(data)
	}
	entry.UserID = fieldEntryUserID.Parse(data)
	entry.TargetID = fieldEntryTargetID.Parse(data)
	entry.ActionType = fieldEntryAction.Parse(data)
	entry.Reason = fieldEntryReason.Parse(data)
	entry.Changes = parseEntryChanges(data, entry.ActionType)
	return entry
}

func parseEntryChanges(data codec.Payload, event Event) map[string]Change {
	raw, ok := codec.WireArray(data["changes"])
	if !ok || len(raw) == 0 {
		return nil
	}
	group := ConversionsFor(event)
	out := make(map[string]Change, len(raw))
	for _, element := range raw {
		nested, ok := codec.WireObject(element)
		if !ok {
			continue
		}
		change, ok := group.ChangeFromData(nested)
		if !ok {
			continue
		}
		if existing, seen := out[change.Name()]; seen {
			change = existing.Merge(change)
		}
		out[change.Name()] = change
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToData serializes the entry. Changes are emitted in attribute order so the
// output is deterministic; the identifier and guild binding are emitted only
// when includeInternals is set.
func (e *Entry) ToData(defaults, includeInternals bool) codec.Payload {
	data := codec.Payload{}
	data = fieldEntryAction.Put(e.ActionType, data, defaults)
	data = e.putChanges(data, defaults)
	data = fieldEntryReason.Put(e.Reason, data, defaults)
	data = fieldEntryTargetID.Put(e.TargetID, data, defaults)
	data = fieldEntryUserID.Put(e.UserID, data, defaults)
	if includeInternals {
		data = fieldEntryID.Put(e.ID, data, defaults)
		data = fieldEntryGuildID.Put(e.GuildID, data, defaults)
	}
	return data
}

func (e *Entry) putChanges(data codec.Payload, defaults bool) codec.Payload {
	if len(e.Changes) == 0 {
		if defaults {
			data["changes"] = []codec.Payload{}
		}
		return data
	}
	group := ConversionsFor(e.ActionType)
	names := make([]string, 0, len(e.Changes))
	for name := range e.Changes {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]codec.Payload, 0, len(names))
	for _, name := range names {
		out = append(out, group.ChangeToData(e.Changes[name]))
	}
	data["changes"] = out
	return data
}

// Change returns the change recorded for an attribute, if any.
func (e *Entry) Change(name string) (Change, bool) {
	change, ok := e.Changes[name]
	return change, ok
}

// SortedChanges returns the entry's changes in attribute order.
func (e *Entry) SortedChanges() []Change {
	names := make([]string, 0, len(e.Changes))
	for name := range e.Changes {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]Change, 0, len(names))
	for _, name := range names {
		out = append(out, e.Changes[name])
	}
	return out
}

// Copy returns an independent copy. Change values are immutable, so the map
// alone is cloned.
func (e *Entry) Copy() *Entry {
	copied := *e
	copied.Changes = maps.Clone(e.Changes)
	return &copied
}

// Equal reports structural equality over the declared attributes.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID &&
		e.GuildID == other.GuildID &&
		e.UserID == other.UserID &&
		e.TargetID == other.TargetID &&
		e.ActionType == other.ActionType &&
		e.Reason == other.Reason &&
		maps.EqualFunc(e.Changes, other.Changes, Change.Equal)
}

// Hash accumulates the declared attributes with XOR, so the result does not
// depend on attribute ordering. Change values contribute their name and flag
// set; the values themselves may be of any type and stay out of the hash.
func (e *Entry) Hash() uint64 {
	hash := uint64(e.ID) ^
		uint64(e.GuildID) ^
		uint64(e.UserID) ^
		uint64(e.TargetID) ^
		uint64(e.ActionType)<<3
	if e.Reason != "" {
		hash ^= xxhash.Sum64String(e.Reason)
	}
	for name, change := range e.Changes {
		hash ^= xxhash.Sum64String(name) ^ uint64(change.Flags())<<43
	}
	return hash
}
