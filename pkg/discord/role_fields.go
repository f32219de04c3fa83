package discord

import "cordcore/pkg/codec"

// Field codecs for the role schema. Permissions travel as a decimal string;
// the manager is flattened out of the nested "tags" object.
var (
	fieldRoleID      = codec.EntityID[Snowflake]("id")
	fieldRoleGuildID = codec.EntityID[Snowflake]("guild_id")
	fieldRoleColor   = codec.NewField("color", parseRoleColor, putRoleColor, colorValidator("color"))
	fieldRoleManaged = codec.Bool("managed", false)
	fieldRoleMention = codec.Bool("mentionable", false)
	fieldRoleName    = codec.ForceString("name").
				WithValidate(codec.StringValidator("name", 2, 32))
	fieldRolePermissions = codec.StringFlag[Permission]("permissions")
	fieldRolePosition    = codec.OptionalInt("position", 0).
				WithValidate(codec.IntCondValidator("position", func(value int) bool {
			return value >= 0
		}, "non-negative"))
	fieldRoleSeparated    = codec.Bool("hoist", false)
	fieldRoleUnicodeEmoji = codec.NullableString("unicode_emoji")
)

func parseRoleColor(data codec.Payload) Color {
	if value, ok := codec.WireInt(data["color"]); ok {
		return Color(value)
	}
	return 0
}

func putRoleColor(value Color, data codec.Payload, defaults bool) codec.Payload {
	data["color"] = int(value)
	return data
}

// parseRoleManager flattens the tags object into a manager type and id.
func parseRoleManager(data codec.Payload) (RoleManagerType, Snowflake) {
	tags, ok := codec.WireObject(data["tags"])
	if !ok {
		return RoleManagerNone, 0
	}
	if raw, ok := tags["bot_id"]; ok {
		return RoleManagerBot, parseTagID(raw)
	}
	if _, ok := tags["premium_subscriber"]; ok {
		return RoleManagerBooster, 0
	}
	if raw, ok := tags["integration_id"]; ok {
		return RoleManagerIntegration, parseTagID(raw)
	}
	return RoleManagerUnset, 0
}

func parseTagID(raw any) Snowflake {
	if s, ok := codec.WireString(raw); ok {
		id, err := ParseSnowflake(s)
		if err != nil {
			return 0
		}
		return id
	}
	if n, ok := codec.WireUint(raw); ok {
		return Snowflake(n)
	}
	return 0
}

// putRoleManager rebuilds the tags object. Booster tags carry the
// premium_subscriber key with a null value, matching how Discord emits them.
func putRoleManager(managerType RoleManagerType, managerID Snowflake, data codec.Payload, defaults bool) codec.Payload {
	switch managerType {
	case RoleManagerBot:
		data["tags"] = codec.Payload{"bot_id": managerID.String()}
	case RoleManagerBooster:
		data["tags"] = codec.Payload{"premium_subscriber": nil}
	case RoleManagerIntegration:
		data["tags"] = codec.Payload{"integration_id": managerID.String()}
	case RoleManagerUnset:
		data["tags"] = codec.Payload{}
	default:
		if defaults {
			data["tags"] = nil
		}
	}
	return data
}

// roleAttributes maps attribute names to validating setters, shared by
// precreation and the option constructors.
var roleAttributes = map[string]func(*Role, any) error{
	"color":         attrSetter(fieldRoleColor, func(r *Role, v Color) { r.Color = v }),
	"managed":       attrSetter(fieldRoleManaged, func(r *Role, v bool) { r.Managed = v }),
	"mentionable":   attrSetter(fieldRoleMention, func(r *Role, v bool) { r.Mentionable = v }),
	"name":          attrSetter(fieldRoleName, func(r *Role, v string) { r.Name = v }),
	"permissions":   attrSetter(fieldRolePermissions, func(r *Role, v Permission) { r.Permissions = v }),
	"position":      attrSetter(fieldRolePosition, func(r *Role, v int) { r.Position = v }),
	"separated":     attrSetter(fieldRoleSeparated, func(r *Role, v bool) { r.Separated = v }),
	"unicode_emoji": attrSetter(fieldRoleUnicodeEmoji, func(r *Role, v string) { r.UnicodeEmoji = v }),
}

// RoleOption configures one attribute on a role under construction.
type RoleOption func(*Role) error

func roleOption(name string, value any) RoleOption {
	return func(r *Role) error { return roleAttributes[name](r, value) }
}

// RoleColor sets the display color.
func RoleColor(color Color) RoleOption { return roleOption("color", color) }

// RoleManaged marks the role as integration-owned.
func RoleManaged(managed bool) RoleOption { return roleOption("managed", managed) }

// RoleMentionable allows anyone to mention the role.
func RoleMentionable(mentionable bool) RoleOption { return roleOption("mentionable", mentionable) }

// RoleName sets the role name.
func RoleName(name string) RoleOption { return roleOption("name", name) }

// RolePermissions sets the permission bitset.
func RolePermissions(permissions Permission) RoleOption {
	return roleOption("permissions", permissions)
}

// RolePosition sets the position in the role list.
func RolePosition(position int) RoleOption { return roleOption("position", position) }

// RoleSeparated displays the role's members in their own sidebar group.
func RoleSeparated(separated bool) RoleOption { return roleOption("separated", separated) }

// RoleUnicodeEmoji sets the unicode emoji rendered next to the role name.
func RoleUnicodeEmoji(emoji string) RoleOption { return roleOption("unicode_emoji", emoji) }
