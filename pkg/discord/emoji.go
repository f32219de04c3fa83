package discord

import (
	"slices"

	"cordcore/pkg/codec"
)

// Emoji is either a custom guild emoji or a builtin unicode emoji. A custom
// emoji referenced by id alone stays partial until its guild's payload
// carries the definition; builtin emojis are real by construction.
type Emoji struct {
	ID            Snowflake
	GuildID       Snowflake
	Animated      bool
	Available     bool
	Managed       bool
	Name          string
	RequireColons bool
	RoleIDs       []Snowflake
	Unicode       string
	User          *User
}

// NewEmoji builds an unregistered emoji from options. Every option
// validates its value; all violations are reported together.
func NewEmoji(options ...EmojiOption) (*Emoji, error) {
	emoji := &Emoji{Available: true, RequireColons: true, User: ZeroUser}
	if err := applyOptions(emoji, options); err != nil {
		return nil, err
	}
	return emoji, nil
}

// EmojiFromData builds an unregistered emoji from a wire payload. Emoji
// payloads do not carry their guild; the owning parse supplies it.
func EmojiFromData(data codec.Payload, guildID Snowflake) *Emoji {
	emoji := &Emoji{}
	emoji.setFromData(data, guildID, UserFromData)
	return emoji
}

// resolveUser lets a registry-owned parse intern the uploader while the
// plain constructor builds a detached one.
func (e *Emoji) setFromData(data codec.Payload, guildID Snowflake, resolveUser func(codec.Payload) *User) {
	e.ID = fieldEmojiID.Parse(data)
	if guildID != 0 {
		e.GuildID = guildID
	} else {
		e.GuildID = fieldEmojiGuildID.Parse(data)
	}
	e.Animated = fieldEmojiAnimated.Parse(data)
	e.Available = fieldEmojiAvailable.Parse(data)
	e.Managed = fieldEmojiManaged.Parse(data)
	e.Name = fieldEmojiName.Parse(data)
	e.RequireColons = fieldEmojiRequireColons.Parse(data)
	e.RoleIDs = fieldEmojiRoleIDs.Parse(data)
	e.Unicode = fieldEmojiUnicode.Parse(data)
	if nested, ok := codec.WireObject(data["user"]); ok {
		e.User = resolveUser(nested)
	} else {
		e.User = ZeroUser
	}
}

// ToData serializes the emoji. A builtin emoji reduces to its rune sequence
// under the name key, the shape reaction endpoints consume; includeInternals
// switches to the full self-contained form instead.
func (e *Emoji) ToData(defaults, includeInternals bool) codec.Payload {
	if e.Unicode != "" && !includeInternals {
		return codec.Payload{"name": e.Unicode}
	}
	data := codec.Payload{}
	data = fieldEmojiAnimated.Put(e.Animated, data, defaults)
	data = fieldEmojiAvailable.Put(e.Available, data, defaults)
	data = fieldEmojiName.Put(e.Name, data, defaults)
	data = fieldEmojiRequireColons.Put(e.RequireColons, data, defaults)
	data = fieldEmojiRoleIDs.Put(e.RoleIDs, data, defaults)
	if includeInternals {
		data = fieldEmojiID.Put(e.ID, data, defaults)
		data = fieldEmojiGuildID.Put(e.GuildID, data, defaults)
		data = fieldEmojiManaged.Put(e.Managed, data, defaults)
		data = fieldEmojiUnicode.Put(e.Unicode, data, defaults)
		data = putEmojiUser(e.uploader(), data, defaults, includeInternals)
	}
	return data
}

func (e *Emoji) uploader() *User {
	if e.User == nil {
		return ZeroUser
	}
	return e.User
}

// DifferenceUpdate hydrates the emoji from data and returns the previous
// values of the attributes that changed, keyed by attribute name.
func (e *Emoji) DifferenceUpdate(data codec.Payload) map[string]any {
	old := map[string]any{}
	if animated := fieldEmojiAnimated.Parse(data); animated != e.Animated {
		old["animated"] = e.Animated
		e.Animated = animated
	}
	if available := fieldEmojiAvailable.Parse(data); available != e.Available {
		old["available"] = e.Available
		e.Available = available
	}
	if managed := fieldEmojiManaged.Parse(data); managed != e.Managed {
		old["managed"] = e.Managed
		e.Managed = managed
	}
	if name := fieldEmojiName.Parse(data); name != e.Name {
		old["name"] = e.Name
		e.Name = name
	}
	if require := fieldEmojiRequireColons.Parse(data); require != e.RequireColons {
		old["require_colons"] = e.RequireColons
		e.RequireColons = require
	}
	if roleIDs := fieldEmojiRoleIDs.Parse(data); !slices.Equal(roleIDs, e.RoleIDs) {
		old["role_ids"] = e.RoleIDs
		e.RoleIDs = roleIDs
	}
	return old
}

// Partial reports whether the emoji still awaits a defining payload. A
// builtin emoji never is partial.
func (e *Emoji) Partial() bool { return e.GuildID == 0 && e.Unicode == "" }

// RawID implements codec.Identifiable.
func (e *Emoji) RawID() uint64 { return uint64(e.ID) }

// Format renders the emoji the way message content embeds it.
func (e *Emoji) Format() string {
	if e.Unicode != "" {
		return e.Unicode
	}
	if e.Animated {
		return "<a:" + e.Name + ":" + e.ID.String() + ">"
	}
	return "<:" + e.Name + ":" + e.ID.String() + ">"
}

// Copy returns an independent, unregistered copy.
func (e *Emoji) Copy() *Emoji {
	copied := *e
	copied.RoleIDs = slices.Clone(e.RoleIDs)
	return &copied
}

// CopyWith returns an independent, unregistered copy with the given
// attributes replaced.
func (e *Emoji) CopyWith(options ...EmojiOption) (*Emoji, error) {
	copied := e.Copy()
	if err := applyOptions(copied, options); err != nil {
		return nil, err
	}
	return copied, nil
}

// Equal reports structural equality over the declared attributes. The
// uploader compares by account, not by pointer.
func (e *Emoji) Equal(other *Emoji) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID &&
		e.GuildID == other.GuildID &&
		e.Animated == other.Animated &&
		e.Available == other.Available &&
		e.Managed == other.Managed &&
		e.Name == other.Name &&
		e.RequireColons == other.RequireColons &&
		slices.Equal(e.RoleIDs, other.RoleIDs) &&
		e.Unicode == other.Unicode &&
		e.uploader().Equal(other.uploader())
}

// Hash accumulates the declared attributes with XOR, so the result does not
// depend on attribute ordering.
func (e *Emoji) Hash() uint64 {
	hash := uint64(e.ID) ^
		uint64(e.GuildID) ^
		hashBool(e.Animated, 1) ^
		hashBool(e.Available, 2) ^
		hashBool(e.Managed, 3) ^
		hashString(e.Name) ^
		hashBool(e.RequireColons, 4) ^
		hashString(e.Unicode)
	for _, roleID := range e.RoleIDs {
		hash ^= uint64(roleID)
	}
	hash ^= e.uploader().Hash()
	return hash
}
