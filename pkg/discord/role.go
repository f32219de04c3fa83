package discord

import (
	"cmp"
	"slices"

	"cordcore/pkg/codec"
)

// Role is a guild permission role. A role referenced by id alone stays
// partial until a guild payload carries its definition; the guild binding
// is what makes a role real.
type Role struct {
	ID           Snowflake
	GuildID      Snowflake
	Color        Color
	Managed      bool
	ManagerType  RoleManagerType
	ManagerID    Snowflake
	Mentionable  bool
	Name         string
	Permissions  Permission
	Position     int
	Separated    bool
	UnicodeEmoji string
}

// NewRole builds an unregistered role from options. Every option validates
// its value; all violations are reported together.
func NewRole(options ...RoleOption) (*Role, error) {
	role := &Role{}
	if err := applyOptions(role, options); err != nil {
		return nil, err
	}
	return role, nil
}

// RoleFromData builds an unregistered role from a wire payload. Role
// payloads do not carry their guild; the owning parse supplies it.
func RoleFromData(data codec.Payload, guildID Snowflake) *Role {
	role := &Role{}
	role.setFromData(data, guildID)
	return role
}

func (r *Role) setFromData(data codec.Payload, guildID Snowflake) {
	r.ID = fieldRoleID.Parse(data)
	if guildID != 0 {
		r.GuildID = guildID
	} else {
		r.GuildID = fieldRoleGuildID.Parse(data)
	}
	r.Color = fieldRoleColor.Parse(data)
	r.Managed = fieldRoleManaged.Parse(data)
	r.ManagerType, r.ManagerID = parseRoleManager(data)
	r.Mentionable = fieldRoleMention.Parse(data)
	r.Name = fieldRoleName.Parse(data)
	r.Permissions = fieldRolePermissions.Parse(data)
	r.Position = fieldRolePosition.Parse(data)
	r.Separated = fieldRoleSeparated.Parse(data)
	r.UnicodeEmoji = fieldRoleUnicodeEmoji.Parse(data)
}

// ToData serializes the role. The identifier, guild binding and manager
// tags are emitted only when includeInternals is set.
func (r *Role) ToData(defaults, includeInternals bool) codec.Payload {
	data := codec.Payload{}
	data = fieldRoleColor.Put(r.Color, data, defaults)
	data = fieldRoleMention.Put(r.Mentionable, data, defaults)
	data = fieldRoleName.Put(r.Name, data, defaults)
	data = fieldRolePermissions.Put(r.Permissions, data, defaults)
	data = fieldRolePosition.Put(r.Position, data, defaults)
	data = fieldRoleSeparated.Put(r.Separated, data, defaults)
	data = fieldRoleUnicodeEmoji.Put(r.UnicodeEmoji, data, defaults)
	if includeInternals {
		data = fieldRoleID.Put(r.ID, data, defaults)
		data = fieldRoleGuildID.Put(r.GuildID, data, defaults)
		data = fieldRoleManaged.Put(r.Managed, data, defaults)
		data = putRoleManager(r.ManagerType, r.ManagerID, data, defaults)
	}
	return data
}

// DifferenceUpdate hydrates the role from data and returns the previous
// values of the attributes that changed, keyed by attribute name.
func (r *Role) DifferenceUpdate(data codec.Payload) map[string]any {
	old := map[string]any{}
	if color := fieldRoleColor.Parse(data); color != r.Color {
		old["color"] = r.Color
		r.Color = color
	}
	if managed := fieldRoleManaged.Parse(data); managed != r.Managed {
		old["managed"] = r.Managed
		r.Managed = managed
	}
	if managerType, managerID := parseRoleManager(data); managerType != r.ManagerType || managerID != r.ManagerID {
		old["manager"] = r.ManagerType
		r.ManagerType = managerType
		r.ManagerID = managerID
	}
	if mentionable := fieldRoleMention.Parse(data); mentionable != r.Mentionable {
		old["mentionable"] = r.Mentionable
		r.Mentionable = mentionable
	}
	if name := fieldRoleName.Parse(data); name != r.Name {
		old["name"] = r.Name
		r.Name = name
	}
	if permissions := fieldRolePermissions.Parse(data); permissions != r.Permissions {
		old["permissions"] = r.Permissions
		r.Permissions = permissions
	}
	if position := fieldRolePosition.Parse(data); position != r.Position {
		old["position"] = r.Position
		r.Position = position
	}
	if separated := fieldRoleSeparated.Parse(data); separated != r.Separated {
		old["separated"] = r.Separated
		r.Separated = separated
	}
	if emoji := fieldRoleUnicodeEmoji.Parse(data); emoji != r.UnicodeEmoji {
		old["unicode_emoji"] = r.UnicodeEmoji
		r.UnicodeEmoji = emoji
	}
	return old
}

// Partial reports whether the role still awaits its guild's payload.
func (r *Role) Partial() bool { return r.GuildID == 0 }

// RawID implements codec.Identifiable.
func (r *Role) RawID() uint64 { return uint64(r.ID) }

// Mention formats the role as an in-message mention.
func (r *Role) Mention() string { return "<@&" + r.ID.String() + ">" }

// Copy returns an independent, unregistered copy.
func (r *Role) Copy() *Role {
	copied := *r
	return &copied
}

// CopyWith returns an independent, unregistered copy with the given
// attributes replaced.
func (r *Role) CopyWith(options ...RoleOption) (*Role, error) {
	copied := r.Copy()
	if err := applyOptions(copied, options); err != nil {
		return nil, err
	}
	return copied, nil
}

// Equal reports structural equality over the declared attributes.
func (r *Role) Equal(other *Role) bool {
	if r == nil || other == nil {
		return r == other
	}
	return *r == *other
}

// Hash accumulates the declared attributes with XOR, so the result does not
// depend on attribute ordering.
func (r *Role) Hash() uint64 {
	return uint64(r.ID) ^
		uint64(r.GuildID) ^
		uint64(r.Color)<<2 ^
		hashBool(r.Managed, 1) ^
		uint64(r.ManagerType)<<33 ^
		uint64(r.ManagerID) ^
		hashBool(r.Mentionable, 5) ^
		hashString(r.Name) ^
		uint64(r.Permissions) ^
		uint64(r.Position)<<17 ^
		hashBool(r.Separated, 9) ^
		hashString(r.UnicodeEmoji)
}

// CompareRoles orders roles the way Discord renders them, lowest position
// first with the identifier as tie breaker.
func CompareRoles(a, b *Role) int {
	if c := cmp.Compare(a.Position, b.Position); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortRoles sorts roles in place by (position, id).
func SortRoles(roles []*Role) {
	slices.SortFunc(roles, CompareRoles)
}
