package discord

import "cordcore/pkg/codec"

// Field codecs for the guild schema. Availability is stored negated under
// the unavailable key; the channel pointers share the optional entity id
// family so an unset channel disappears from PATCH-style payloads.
var (
	fieldGuildID           = codec.EntityID[Snowflake]("id")
	fieldGuildAfkChannelID = codec.OptionalEntityID[Snowflake]("afk_channel_id")
	fieldGuildAfkTimeout   = codec.OptionalInt("afk_timeout", 0).
				WithValidate(codec.IntOptionsValidator("afk_timeout", 0, 60, 300, 900, 1800, 3600))
	fieldGuildAvailable  = codec.NegatedBool("unavailable", true)
	fieldGuildBoostCount = codec.OptionalInt("premium_subscription_count", 0).
				WithValidate(codec.IntCondValidator("boost_count", func(value int) bool {
			return value >= 0
		}, "non-negative"))
	fieldGuildContentFilter = codec.Enum("explicit_content_filter", ContentFilterDisabled)
	fieldGuildDescription   = codec.NullableString("description").
				WithValidate(codec.StringValidator("description", 0, 300))
	fieldGuildFeatures     = codec.StringEnumArray[GuildFeature]("features")
	fieldGuildLocale       = codec.ForceStringEnum("preferred_locale", DefaultLocale)
	fieldGuildMaxPresences = codec.NullableInt("max_presences", 0).
				WithValidate(codec.IntCondValidator("max_presences", func(value int) bool {
			return value >= 0
		}, "non-negative"))
	fieldGuildMaxUsers = codec.NullableInt("max_members", 0).
				WithValidate(codec.IntCondValidator("max_users", func(value int) bool {
			return value >= 0
		}, "non-negative"))
	fieldGuildMessageNotification = codec.Enum("default_message_notifications", NotifyAllMessages)
	fieldGuildMfa                 = codec.Enum("mfa_level", MfaNone)
	fieldGuildName                = codec.ForceString("name").
					WithValidate(codec.StringValidator("name", 2, 100))
	fieldGuildOwnerID                = codec.EntityID[Snowflake]("owner_id")
	fieldGuildPublicUpdatesChannelID = codec.OptionalEntityID[Snowflake]("public_updates_channel_id")
	fieldGuildRulesChannelID         = codec.OptionalEntityID[Snowflake]("rules_channel_id")
	fieldGuildSafetyAlertsChannelID  = codec.OptionalEntityID[Snowflake]("safety_alerts_channel_id")
	fieldGuildSystemChannelID        = codec.OptionalEntityID[Snowflake]("system_channel_id")
	fieldGuildSystemChannelFlags     = codec.ForceFlag[SystemChannelFlags]("system_channel_flags")
	fieldGuildVanityCode             = codec.NullableString("vanity_url_code").
					WithValidate(codec.StringValidator("vanity_code", 0, 1024))
	fieldGuildVerificationLevel = codec.Enum("verification_level", VerificationNone)
	fieldGuildWidgetChannelID   = codec.OptionalEntityID[Snowflake]("widget_channel_id")
	fieldGuildWidgetEnabled     = codec.Bool("widget_enabled", false)

	putGuildRoles  = codec.PutInternalEntityDictionary[Snowflake, *Role]("roles", true)
	putGuildEmojis = codec.PutInternalEntityDictionary[Snowflake, *Emoji]("emojis", true)

	validateGuildRoles  = codec.EntityDictionaryValidator[Snowflake, *Role]("roles")
	validateGuildEmojis = codec.EntityDictionaryValidator[Snowflake, *Emoji]("emojis")
)

// guildAttributes maps attribute names to validating setters, shared by
// precreation and the option constructors.
var guildAttributes = map[string]func(*Guild, any) error{
	"afk_channel_id": attrSetter(fieldGuildAfkChannelID, func(g *Guild, v Snowflake) { g.AfkChannelID = v }),
	"afk_timeout":    attrSetter(fieldGuildAfkTimeout, func(g *Guild, v int) { g.AfkTimeout = v }),
	"available":      attrSetter(fieldGuildAvailable, func(g *Guild, v bool) { g.Available = v }),
	"boost_count":    attrSetter(fieldGuildBoostCount, func(g *Guild, v int) { g.BoostCount = v }),
	"content_filter": attrSetter(fieldGuildContentFilter, func(g *Guild, v ContentFilterLevel) { g.ContentFilter = v }),
	"description":    attrSetter(fieldGuildDescription, func(g *Guild, v string) { g.Description = v }),
	"features":       attrSetter(fieldGuildFeatures, func(g *Guild, v []GuildFeature) { g.Features = v }),
	"locale":         attrSetter(fieldGuildLocale, func(g *Guild, v Locale) { g.Locale = v }),
	"max_presences":  attrSetter(fieldGuildMaxPresences, func(g *Guild, v int) { g.MaxPresences = v }),
	"max_users":      attrSetter(fieldGuildMaxUsers, func(g *Guild, v int) { g.MaxUsers = v }),
	"message_notification": attrSetter(fieldGuildMessageNotification, func(g *Guild, v MessageNotificationLevel) {
		g.MessageNotification = v
	}),
	"mfa":                       attrSetter(fieldGuildMfa, func(g *Guild, v MfaLevel) { g.Mfa = v }),
	"name":                      attrSetter(fieldGuildName, func(g *Guild, v string) { g.Name = v }),
	"owner_id":                  attrSetter(fieldGuildOwnerID, func(g *Guild, v Snowflake) { g.OwnerID = v }),
	"public_updates_channel_id": attrSetter(fieldGuildPublicUpdatesChannelID, func(g *Guild, v Snowflake) { g.PublicUpdatesChannelID = v }),
	"rules_channel_id":          attrSetter(fieldGuildRulesChannelID, func(g *Guild, v Snowflake) { g.RulesChannelID = v }),
	"safety_alerts_channel_id":  attrSetter(fieldGuildSafetyAlertsChannelID, func(g *Guild, v Snowflake) { g.SafetyAlertsChannelID = v }),
	"system_channel_id":         attrSetter(fieldGuildSystemChannelID, func(g *Guild, v Snowflake) { g.SystemChannelID = v }),
	"system_channel_flags": attrSetter(fieldGuildSystemChannelFlags, func(g *Guild, v SystemChannelFlags) {
		g.SystemChannelFlags = v
	}),
	"vanity_code":        attrSetter(fieldGuildVanityCode, func(g *Guild, v string) { g.VanityCode = v }),
	"verification_level": attrSetter(fieldGuildVerificationLevel, func(g *Guild, v VerificationLevel) { g.VerificationLevel = v }),
	"widget_channel_id":  attrSetter(fieldGuildWidgetChannelID, func(g *Guild, v Snowflake) { g.WidgetChannelID = v }),
	"widget_enabled":     attrSetter(fieldGuildWidgetEnabled, func(g *Guild, v bool) { g.WidgetEnabled = v }),
	"roles": func(g *Guild, value any) error {
		roles, err := validateGuildRoles(value)
		if err != nil {
			return err
		}
		g.Roles = roles
		return nil
	},
	"emojis": func(g *Guild, value any) error {
		emojis, err := validateGuildEmojis(value)
		if err != nil {
			return err
		}
		g.Emojis = emojis
		return nil
	},
}

// GuildOption configures one attribute on a guild under construction.
type GuildOption func(*Guild) error

func guildOption(name string, value any) GuildOption {
	return func(g *Guild) error { return guildAttributes[name](g, value) }
}

// GuildAfkChannelID sets the voice channel idle members are moved to.
func GuildAfkChannelID(id Snowflake) GuildOption { return guildOption("afk_channel_id", id) }

// GuildAfkTimeout sets the idle seconds before a member counts as away.
// Discord accepts only 60, 300, 900, 1800 or 3600.
func GuildAfkTimeout(seconds int) GuildOption { return guildOption("afk_timeout", seconds) }

// GuildAvailable marks the guild as reachable.
func GuildAvailable(available bool) GuildOption { return guildOption("available", available) }

// GuildBoostCount sets the active boost count.
func GuildBoostCount(count int) GuildOption { return guildOption("boost_count", count) }

// GuildContentFilter sets the explicit media filter level.
func GuildContentFilter(level ContentFilterLevel) GuildOption {
	return guildOption("content_filter", level)
}

// GuildDescription sets the discovery description.
func GuildDescription(description string) GuildOption {
	return guildOption("description", description)
}

// GuildEmojis sets the custom emoji collection.
func GuildEmojis(emojis map[Snowflake]*Emoji) GuildOption { return guildOption("emojis", emojis) }

// GuildFeatures sets the enabled feature set.
func GuildFeatures(features []GuildFeature) GuildOption { return guildOption("features", features) }

// GuildLocale sets the preferred locale.
func GuildLocale(locale Locale) GuildOption { return guildOption("locale", locale) }

// GuildMaxPresences sets the presence ceiling.
func GuildMaxPresences(limit int) GuildOption { return guildOption("max_presences", limit) }

// GuildMaxUsers sets the member ceiling.
func GuildMaxUsers(limit int) GuildOption { return guildOption("max_users", limit) }

// GuildMessageNotification sets the default notification level.
func GuildMessageNotification(level MessageNotificationLevel) GuildOption {
	return guildOption("message_notification", level)
}

// GuildMfa sets the moderation multi-factor requirement.
func GuildMfa(level MfaLevel) GuildOption { return guildOption("mfa", level) }

// GuildName sets the guild name.
func GuildName(name string) GuildOption { return guildOption("name", name) }

// GuildOwnerID sets the owning account.
func GuildOwnerID(id Snowflake) GuildOption { return guildOption("owner_id", id) }

// GuildPublicUpdatesChannelID sets where Discord posts community updates.
func GuildPublicUpdatesChannelID(id Snowflake) GuildOption {
	return guildOption("public_updates_channel_id", id)
}

// GuildRoles sets the role collection.
func GuildRoles(roles map[Snowflake]*Role) GuildOption { return guildOption("roles", roles) }

// GuildRulesChannelID sets the rules channel.
func GuildRulesChannelID(id Snowflake) GuildOption { return guildOption("rules_channel_id", id) }

// GuildSafetyAlertsChannelID sets where safety alerts are delivered.
func GuildSafetyAlertsChannelID(id Snowflake) GuildOption {
	return guildOption("safety_alerts_channel_id", id)
}

// GuildSystemChannelID sets the system message channel.
func GuildSystemChannelID(id Snowflake) GuildOption { return guildOption("system_channel_id", id) }

// GuildSystemChannelFlags sets which system messages are suppressed.
func GuildSystemChannelFlags(flags SystemChannelFlags) GuildOption {
	return guildOption("system_channel_flags", flags)
}

// GuildVanityCode sets the vanity invite code.
func GuildVanityCode(code string) GuildOption { return guildOption("vanity_code", code) }

// GuildVerificationLevel sets the participation verification bar.
func GuildVerificationLevel(level VerificationLevel) GuildOption {
	return guildOption("verification_level", level)
}

// GuildWidgetChannelID sets the channel the widget invites into.
func GuildWidgetChannelID(id Snowflake) GuildOption {
	return guildOption("widget_channel_id", id)
}

// GuildWidgetEnabled toggles the embeddable widget.
func GuildWidgetEnabled(enabled bool) GuildOption { return guildOption("widget_enabled", enabled) }
