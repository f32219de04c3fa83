package audit

import (
	"strconv"

	"cordcore/pkg/codec"
	"cordcore/pkg/discord"
)

// Conversion binds one wire change key to its in-memory attribute name and
// value transforms. A nil transform passes the value through unchanged.
type Conversion struct {
	// Key is the wire name the change travels under.
	Key string
	// Attribute is the in-memory attribute name.
	Attribute string
	// Get deserializes an observed wire value.
	Get func(any) any
	// Put serializes an observed value back to its wire shape.
	Put func(any) any
}

func (c Conversion) get(value any) any {
	if c.Get == nil {
		return value
	}
	return c.Get(value)
}

func (c Conversion) put(value any) any {
	if c.Put == nil {
		return value
	}
	return c.Put(value)
}

// ConversionGroup is one event family's conversion table, indexed both ways.
// Keys without a registered conversion pass through raw under their wire
// name, so entries recorded by a newer API version survive unharmed.
type ConversionGroup struct {
	byKey       map[string]Conversion
	byAttribute map[string]Conversion
}

// NewConversionGroup indexes the given conversions.
func NewConversionGroup(conversions ...Conversion) ConversionGroup {
	group := ConversionGroup{
		byKey:       make(map[string]Conversion, len(conversions)),
		byAttribute: make(map[string]Conversion, len(conversions)),
	}
	for _, conversion := range conversions {
		group.byKey[conversion.Key] = conversion
		group.byAttribute[conversion.Attribute] = conversion
	}
	return group
}

// ByKey returns the conversion registered for a wire key.
func (g ConversionGroup) ByKey(key string) (Conversion, bool) {
	conversion, ok := g.byKey[key]
	return conversion, ok
}

// ByAttribute returns the conversion registered for an attribute name.
func (g ConversionGroup) ByAttribute(name string) (Conversion, bool) {
	conversion, ok := g.byAttribute[name]
	return conversion, ok
}

// ChangeFromData builds a change from one wire fragment. Presence of the
// old_value and new_value keys is what sets the flags; an observed null is
// an observed value. Fragments without a usable key are dropped.
func (g ConversionGroup) ChangeFromData(data codec.Payload) (Change, bool) {
	key, ok := codec.WireString(data["key"])
	if !ok || key == "" {
		return Change{}, false
	}
	conversion, ok := g.ByKey(key)
	if !ok {
		conversion = Conversion{Key: key, Attribute: key}
	}
	change := Change{name: conversion.Attribute}
	if raw, present := data["old_value"]; present {
		change.before = conversion.get(raw)
		change.flags |= ChangeHasBefore
	}
	if raw, present := data["new_value"]; present {
		change.after = conversion.get(raw)
		change.flags |= ChangeHasAfter
	}
	switch {
	case change.flags.Has(ChangeHasBefore | ChangeHasAfter):
		change.flags |= ChangeIsModification
	case change.flags.Has(ChangeHasAfter):
		change.flags |= ChangeIsAddition
	case change.flags.Has(ChangeHasBefore):
		change.flags |= ChangeIsRemoval
	default:
		return Change{}, false
	}
	return change, true
}

// ChangeToData serializes a change back into its wire fragment. Only
// observed sides are emitted.
func (g ConversionGroup) ChangeToData(change Change) codec.Payload {
	conversion, ok := g.ByAttribute(change.name)
	if !ok {
		conversion = Conversion{Key: change.name, Attribute: change.name}
	}
	data := codec.Payload{"key": conversion.Key}
	if before, ok := change.Before(); ok {
		data["old_value"] = conversion.put(before)
	}
	if after, ok := change.After(); ok {
		data["new_value"] = conversion.put(after)
	}
	return data
}

// ConversionsFor returns the conversion table for an event family. Events
// without a registered table resolve every key raw.
func ConversionsFor(event Event) ConversionGroup {
	switch event {
	case EventGuildUpdate:
		return guildConversions
	case EventRoleCreate, EventRoleUpdate, EventRoleDelete:
		return roleConversions
	case EventEmojiCreate, EventEmojiUpdate, EventEmojiDelete:
		return emojiConversions
	default:
		return rawConversions
	}
}

var (
	guildConversions = NewConversionGroup(
		Conversion{Key: "afk_channel_id", Attribute: "afk_channel_id", Get: getSnowflake, Put: putSnowflake},
		Conversion{Key: "afk_timeout", Attribute: "afk_timeout", Get: getInt},
		Conversion{Key: "default_message_notifications", Attribute: "message_notification",
			Get: enumGet[discord.MessageNotificationLevel](), Put: enumPut[discord.MessageNotificationLevel]()},
		Conversion{Key: "description", Attribute: "description"},
		Conversion{Key: "explicit_content_filter", Attribute: "content_filter",
			Get: enumGet[discord.ContentFilterLevel](), Put: enumPut[discord.ContentFilterLevel]()},
		Conversion{Key: "mfa_level", Attribute: "mfa",
			Get: enumGet[discord.MfaLevel](), Put: enumPut[discord.MfaLevel]()},
		Conversion{Key: "name", Attribute: "name"},
		Conversion{Key: "owner_id", Attribute: "owner_id", Get: getSnowflake, Put: putSnowflake},
		Conversion{Key: "preferred_locale", Attribute: "locale", Get: getLocale, Put: putLocale},
		Conversion{Key: "system_channel_flags", Attribute: "system_channel_flags",
			Get: getSystemChannelFlags, Put: putSystemChannelFlags},
		Conversion{Key: "vanity_url_code", Attribute: "vanity_code"},
		Conversion{Key: "verification_level", Attribute: "verification_level",
			Get: enumGet[discord.VerificationLevel](), Put: enumPut[discord.VerificationLevel]()},
		Conversion{Key: "widget_enabled", Attribute: "widget_enabled"},
	)

	roleConversions = NewConversionGroup(
		Conversion{Key: "color", Attribute: "color", Get: getColor, Put: putColor},
		Conversion{Key: "hoist", Attribute: "separated"},
		Conversion{Key: "mentionable", Attribute: "mentionable"},
		Conversion{Key: "name", Attribute: "name"},
		Conversion{Key: "permissions", Attribute: "permissions", Get: getPermission, Put: putPermission},
		Conversion{Key: "position", Attribute: "position", Get: getInt},
		Conversion{Key: "unicode_emoji", Attribute: "unicode_emoji"},
	)

	emojiConversions = NewConversionGroup(
		Conversion{Key: "available", Attribute: "available"},
		Conversion{Key: "name", Attribute: "name"},
	)

	rawConversions = NewConversionGroup()
)

func getSnowflake(value any) any {
	if value == nil {
		return nil
	}
	if s, ok := codec.WireString(value); ok {
		if id, err := discord.ParseSnowflake(s); err == nil {
			return id
		}
	}
	if n, ok := codec.WireUint(value); ok {
		return discord.Snowflake(n)
	}
	return value
}

func putSnowflake(value any) any {
	if id, ok := value.(discord.Snowflake); ok {
		return id.String()
	}
	return value
}

func getInt(value any) any {
	if n, ok := codec.WireInt(value); ok {
		return int(n)
	}
	return value
}

func getColor(value any) any {
	if n, ok := codec.WireInt(value); ok {
		return discord.Color(n)
	}
	return value
}

func putColor(value any) any {
	if color, ok := value.(discord.Color); ok {
		return int(color)
	}
	return value
}

func getPermission(value any) any {
	if s, ok := codec.WireString(value); ok {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return discord.Permission(n)
		}
	}
	if n, ok := codec.WireUint(value); ok {
		return discord.Permission(n)
	}
	return value
}

func putPermission(value any) any {
	if permission, ok := value.(discord.Permission); ok {
		return strconv.FormatUint(uint64(permission), 10)
	}
	return value
}

func getLocale(value any) any {
	if s, ok := codec.WireString(value); ok {
		return discord.Locale(s)
	}
	return value
}

func putLocale(value any) any {
	if locale, ok := value.(discord.Locale); ok {
		return string(locale)
	}
	return value
}

func getSystemChannelFlags(value any) any {
	if n, ok := codec.WireUint(value); ok {
		return discord.SystemChannelFlags(n)
	}
	return value
}

func putSystemChannelFlags(value any) any {
	if flags, ok := value.(discord.SystemChannelFlags); ok {
		return uint64(flags)
	}
	return value
}

func enumGet[E ~int]() func(any) any {
	return func(value any) any {
		if n, ok := codec.WireInt(value); ok {
			return E(n)
		}
		return value
	}
}

func enumPut[E ~int]() func(any) any {
	return func(value any) any {
		if member, ok := value.(E); ok {
			return int(member)
		}
		return value
	}
}
