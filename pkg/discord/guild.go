package discord

import (
	"maps"
	"slices"

	"cordcore/pkg/codec"
)

// Guild is a Discord server. Guild payloads own their role and emoji
// definitions, so parsing one is what turns referenced roles and emojis
// from partial into real.
type Guild struct {
	ID                     Snowflake
	AfkChannelID           Snowflake
	AfkTimeout             int
	Available              bool
	BoostCount             int
	ContentFilter          ContentFilterLevel
	Description            string
	Emojis                 map[Snowflake]*Emoji
	Features               []GuildFeature
	Locale                 Locale
	MaxPresences           int
	MaxUsers               int
	MessageNotification    MessageNotificationLevel
	Mfa                    MfaLevel
	Name                   string
	OwnerID                Snowflake
	PublicUpdatesChannelID Snowflake
	Roles                  map[Snowflake]*Role
	RulesChannelID         Snowflake
	SafetyAlertsChannelID  Snowflake
	SystemChannelID        Snowflake
	SystemChannelFlags     SystemChannelFlags
	VanityCode             string
	VerificationLevel      VerificationLevel
	WidgetChannelID        Snowflake
	WidgetEnabled          bool
}

// NewGuild builds an unregistered guild from options. Every option
// validates its value; all violations are reported together.
func NewGuild(options ...GuildOption) (*Guild, error) {
	guild := &Guild{Available: true, Locale: DefaultLocale}
	if err := applyOptions(guild, options); err != nil {
		return nil, err
	}
	return guild, nil
}

// GuildFromData builds an unregistered guild from a wire payload, including
// detached roles and emojis. Registry.GuildFromData interns all three.
func GuildFromData(data codec.Payload) *Guild {
	guild := &Guild{}
	guild.setFromData(data, RoleFromData, EmojiFromData)
	return guild
}

// The resolvers let a registry-owned parse intern nested roles and emojis
// while the plain constructor builds detached ones.
func (g *Guild) setFromData(
	data codec.Payload,
	resolveRole func(codec.Payload, Snowflake) *Role,
	resolveEmoji func(codec.Payload, Snowflake) *Emoji,
) {
	g.ID = fieldGuildID.Parse(data)
	g.AfkChannelID = fieldGuildAfkChannelID.Parse(data)
	g.AfkTimeout = fieldGuildAfkTimeout.Parse(data)
	g.Available = fieldGuildAvailable.Parse(data)
	g.BoostCount = fieldGuildBoostCount.Parse(data)
	g.ContentFilter = fieldGuildContentFilter.Parse(data)
	g.Description = fieldGuildDescription.Parse(data)
	g.Features = fieldGuildFeatures.Parse(data)
	g.Locale = fieldGuildLocale.Parse(data)
	g.MaxPresences = fieldGuildMaxPresences.Parse(data)
	g.MaxUsers = fieldGuildMaxUsers.Parse(data)
	g.MessageNotification = fieldGuildMessageNotification.Parse(data)
	g.Mfa = fieldGuildMfa.Parse(data)
	g.Name = fieldGuildName.Parse(data)
	g.OwnerID = fieldGuildOwnerID.Parse(data)
	g.PublicUpdatesChannelID = fieldGuildPublicUpdatesChannelID.Parse(data)
	g.RulesChannelID = fieldGuildRulesChannelID.Parse(data)
	g.SafetyAlertsChannelID = fieldGuildSafetyAlertsChannelID.Parse(data)
	g.SystemChannelID = fieldGuildSystemChannelID.Parse(data)
	g.SystemChannelFlags = fieldGuildSystemChannelFlags.Parse(data)
	g.VanityCode = fieldGuildVanityCode.Parse(data)
	g.VerificationLevel = fieldGuildVerificationLevel.Parse(data)
	g.WidgetChannelID = fieldGuildWidgetChannelID.Parse(data)
	g.WidgetEnabled = fieldGuildWidgetEnabled.Parse(data)
	g.Roles = parseGuildRoles(data, g.ID, resolveRole)
	g.Emojis = parseGuildEmojis(data, g.ID, resolveEmoji)
}

func parseGuildRoles(data codec.Payload, guildID Snowflake, resolve func(codec.Payload, Snowflake) *Role) map[Snowflake]*Role {
	raw, ok := codec.WireArray(data["roles"])
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[Snowflake]*Role, len(raw))
	for _, element := range raw {
		nested, ok := codec.WireObject(element)
		if !ok {
			continue
		}
		role := resolve(nested, guildID)
		if role.ID != 0 {
			out[role.ID] = role
		}
	}
	return out
}

func parseGuildEmojis(data codec.Payload, guildID Snowflake, resolve func(codec.Payload, Snowflake) *Emoji) map[Snowflake]*Emoji {
	raw, ok := codec.WireArray(data["emojis"])
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[Snowflake]*Emoji, len(raw))
	for _, element := range raw {
		nested, ok := codec.WireObject(element)
		if !ok {
			continue
		}
		emoji := resolve(nested, guildID)
		if emoji.ID != 0 {
			out[emoji.ID] = emoji
		}
	}
	return out
}

// ToData serializes the guild. The identifier, the gateway-assigned
// counters and the owned role and emoji collections are emitted only when
// includeInternals is set.
func (g *Guild) ToData(defaults, includeInternals bool) codec.Payload {
	data := codec.Payload{}
	data = fieldGuildAfkChannelID.Put(g.AfkChannelID, data, defaults)
	data = fieldGuildAfkTimeout.Put(g.AfkTimeout, data, defaults)
	data = fieldGuildContentFilter.Put(g.ContentFilter, data, defaults)
	data = fieldGuildDescription.Put(g.Description, data, defaults)
	data = fieldGuildFeatures.Put(g.Features, data, defaults)
	data = fieldGuildLocale.Put(g.Locale, data, defaults)
	data = fieldGuildMessageNotification.Put(g.MessageNotification, data, defaults)
	data = fieldGuildMfa.Put(g.Mfa, data, defaults)
	data = fieldGuildName.Put(g.Name, data, defaults)
	data = fieldGuildPublicUpdatesChannelID.Put(g.PublicUpdatesChannelID, data, defaults)
	data = fieldGuildRulesChannelID.Put(g.RulesChannelID, data, defaults)
	data = fieldGuildSafetyAlertsChannelID.Put(g.SafetyAlertsChannelID, data, defaults)
	data = fieldGuildSystemChannelID.Put(g.SystemChannelID, data, defaults)
	data = fieldGuildSystemChannelFlags.Put(g.SystemChannelFlags, data, defaults)
	data = fieldGuildVanityCode.Put(g.VanityCode, data, defaults)
	data = fieldGuildVerificationLevel.Put(g.VerificationLevel, data, defaults)
	data = fieldGuildWidgetChannelID.Put(g.WidgetChannelID, data, defaults)
	data = fieldGuildWidgetEnabled.Put(g.WidgetEnabled, data, defaults)
	if includeInternals {
		data = fieldGuildID.Put(g.ID, data, defaults)
		data = fieldGuildAvailable.Put(g.Available, data, defaults)
		data = fieldGuildBoostCount.Put(g.BoostCount, data, defaults)
		data = fieldGuildMaxPresences.Put(g.MaxPresences, data, defaults)
		data = fieldGuildMaxUsers.Put(g.MaxUsers, data, defaults)
		data = fieldGuildOwnerID.Put(g.OwnerID, data, defaults)
		data = putGuildRoles(g.Roles, data, defaults, includeInternals)
		data = putGuildEmojis(g.Emojis, data, defaults, includeInternals)
	}
	return data
}

// DifferenceUpdate hydrates the guild's scalar attributes from data and
// returns the previous values of those that changed, keyed by attribute
// name. The role and emoji collections sync through the registry instead;
// their member entities must keep their interned identities.
func (g *Guild) DifferenceUpdate(data codec.Payload) map[string]any {
	old := map[string]any{}
	if v := fieldGuildAfkChannelID.Parse(data); v != g.AfkChannelID {
		old["afk_channel_id"] = g.AfkChannelID
		g.AfkChannelID = v
	}
	if v := fieldGuildAfkTimeout.Parse(data); v != g.AfkTimeout {
		old["afk_timeout"] = g.AfkTimeout
		g.AfkTimeout = v
	}
	if v := fieldGuildAvailable.Parse(data); v != g.Available {
		old["available"] = g.Available
		g.Available = v
	}
	if v := fieldGuildBoostCount.Parse(data); v != g.BoostCount {
		old["boost_count"] = g.BoostCount
		g.BoostCount = v
	}
	if v := fieldGuildContentFilter.Parse(data); v != g.ContentFilter {
		old["content_filter"] = g.ContentFilter
		g.ContentFilter = v
	}
	if v := fieldGuildDescription.Parse(data); v != g.Description {
		old["description"] = g.Description
		g.Description = v
	}
	if v := fieldGuildFeatures.Parse(data); !slices.Equal(v, g.Features) {
		old["features"] = g.Features
		g.Features = v
	}
	if v := fieldGuildLocale.Parse(data); v != g.Locale {
		old["locale"] = g.Locale
		g.Locale = v
	}
	if v := fieldGuildMaxPresences.Parse(data); v != g.MaxPresences {
		old["max_presences"] = g.MaxPresences
		g.MaxPresences = v
	}
	if v := fieldGuildMaxUsers.Parse(data); v != g.MaxUsers {
		old["max_users"] = g.MaxUsers
		g.MaxUsers = v
	}
	if v := fieldGuildMessageNotification.Parse(data); v != g.MessageNotification {
		old["message_notification"] = g.MessageNotification
		g.MessageNotification = v
	}
	if v := fieldGuildMfa.Parse(data); v != g.Mfa {
		old["mfa"] = g.Mfa
		g.Mfa = v
	}
	if v := fieldGuildName.Parse(data); v != g.Name {
		old["name"] = g.Name
		g.Name = v
	}
	if v := fieldGuildOwnerID.Parse(data); v != g.OwnerID {
		old["owner_id"] = g.OwnerID
		g.OwnerID = v
	}
	if v := fieldGuildPublicUpdatesChannelID.Parse(data); v != g.PublicUpdatesChannelID {
		old["public_updates_channel_id"] = g.PublicUpdatesChannelID
		g.PublicUpdatesChannelID = v
	}
	if v := fieldGuildRulesChannelID.Parse(data); v != g.RulesChannelID {
		old["rules_channel_id"] = g.RulesChannelID
		g.RulesChannelID = v
	}
	if v := fieldGuildSafetyAlertsChannelID.Parse(data); v != g.SafetyAlertsChannelID {
		old["safety_alerts_channel_id"] = g.SafetyAlertsChannelID
		g.SafetyAlertsChannelID = v
	}
	if v := fieldGuildSystemChannelID.Parse(data); v != g.SystemChannelID {
		old["system_channel_id"] = g.SystemChannelID
		g.SystemChannelID = v
	}
	if v := fieldGuildSystemChannelFlags.Parse(data); v != g.SystemChannelFlags {
		old["system_channel_flags"] = g.SystemChannelFlags
		g.SystemChannelFlags = v
	}
	if v := fieldGuildVanityCode.Parse(data); v != g.VanityCode {
		old["vanity_code"] = g.VanityCode
		g.VanityCode = v
	}
	if v := fieldGuildVerificationLevel.Parse(data); v != g.VerificationLevel {
		old["verification_level"] = g.VerificationLevel
		g.VerificationLevel = v
	}
	if v := fieldGuildWidgetChannelID.Parse(data); v != g.WidgetChannelID {
		old["widget_channel_id"] = g.WidgetChannelID
		g.WidgetChannelID = v
	}
	if v := fieldGuildWidgetEnabled.Parse(data); v != g.WidgetEnabled {
		old["widget_enabled"] = g.WidgetEnabled
		g.WidgetEnabled = v
	}
	return old
}

// Partial reports whether the guild still awaits its first full payload.
func (g *Guild) Partial() bool { return g.Name == "" }

// RawID implements codec.Identifiable.
func (g *Guild) RawID() uint64 { return uint64(g.ID) }

// Role returns the role with the given id, if the guild owns it.
func (g *Guild) Role(id Snowflake) (*Role, bool) {
	role, ok := g.Roles[id]
	return role, ok
}

// Emoji returns the emoji with the given id, if the guild owns it.
func (g *Guild) Emoji(id Snowflake) (*Emoji, bool) {
	emoji, ok := g.Emojis[id]
	return emoji, ok
}

// SortedRoles returns the guild's roles in display order.
func (g *Guild) SortedRoles() []*Role {
	roles := make([]*Role, 0, len(g.Roles))
	for _, role := range g.Roles {
		roles = append(roles, role)
	}
	SortRoles(roles)
	return roles
}

// Copy returns an independent, unregistered copy. The role and emoji
// collections are copied one level deep: the maps are fresh, the member
// entities keep their identities.
func (g *Guild) Copy() *Guild {
	copied := *g
	copied.Features = slices.Clone(g.Features)
	copied.Roles = maps.Clone(g.Roles)
	copied.Emojis = maps.Clone(g.Emojis)
	return &copied
}

// CopyWith returns an independent, unregistered copy with the given
// attributes replaced.
func (g *Guild) CopyWith(options ...GuildOption) (*Guild, error) {
	copied := g.Copy()
	if err := applyOptions(copied, options); err != nil {
		return nil, err
	}
	return copied, nil
}

// Equal reports structural equality over the declared attributes. The role
// and emoji collections compare by member equality, not identity.
func (g *Guild) Equal(other *Guild) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.ID == other.ID &&
		g.AfkChannelID == other.AfkChannelID &&
		g.AfkTimeout == other.AfkTimeout &&
		g.Available == other.Available &&
		g.BoostCount == other.BoostCount &&
		g.ContentFilter == other.ContentFilter &&
		g.Description == other.Description &&
		maps.EqualFunc(g.Emojis, other.Emojis, (*Emoji).Equal) &&
		slices.Equal(g.Features, other.Features) &&
		g.Locale == other.Locale &&
		g.MaxPresences == other.MaxPresences &&
		g.MaxUsers == other.MaxUsers &&
		g.MessageNotification == other.MessageNotification &&
		g.Mfa == other.Mfa &&
		g.Name == other.Name &&
		g.OwnerID == other.OwnerID &&
		g.PublicUpdatesChannelID == other.PublicUpdatesChannelID &&
		maps.EqualFunc(g.Roles, other.Roles, (*Role).Equal) &&
		g.RulesChannelID == other.RulesChannelID &&
		g.SafetyAlertsChannelID == other.SafetyAlertsChannelID &&
		g.SystemChannelID == other.SystemChannelID &&
		g.SystemChannelFlags == other.SystemChannelFlags &&
		g.VanityCode == other.VanityCode &&
		g.VerificationLevel == other.VerificationLevel &&
		g.WidgetChannelID == other.WidgetChannelID &&
		g.WidgetEnabled == other.WidgetEnabled
}

// Hash accumulates the declared attributes with XOR, so the result does not
// depend on attribute ordering. Collections contribute their members'
// hashes, again order-independent.
func (g *Guild) Hash() uint64 {
	hash := uint64(g.ID) ^
		uint64(g.AfkChannelID) ^
		uint64(g.AfkTimeout)<<12 ^
		hashBool(g.Available, 1) ^
		uint64(g.BoostCount)<<24 ^
		uint64(g.ContentFilter)<<2 ^
		hashString(g.Description) ^
		hashString(string(g.Locale)) ^
		uint64(g.MaxPresences)<<35 ^
		uint64(g.MaxUsers)<<41 ^
		uint64(g.MessageNotification)<<5 ^
		uint64(g.Mfa)<<7 ^
		hashString(g.Name) ^
		uint64(g.OwnerID) ^
		uint64(g.PublicUpdatesChannelID) ^
		uint64(g.RulesChannelID) ^
		uint64(g.SafetyAlertsChannelID) ^
		uint64(g.SystemChannelID) ^
		uint64(g.SystemChannelFlags)<<9 ^
		hashString(g.VanityCode) ^
		uint64(g.VerificationLevel)<<15 ^
		uint64(g.WidgetChannelID) ^
		hashBool(g.WidgetEnabled, 3)
	for _, feature := range g.Features {
		hash ^= hashString(string(feature))
	}
	for _, role := range g.Roles {
		hash ^= role.Hash()
	}
	for _, emoji := range g.Emojis {
		hash ^= emoji.Hash()
	}
	return hash
}
