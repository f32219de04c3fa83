package discord

import "cordcore/pkg/codec"

// User is a Discord account. A partial user carries only its identifier
// until the first full payload hydrates the rest.
type User struct {
	ID               Snowflake
	Name             string
	Discriminator    int
	Bot              bool
	BannerColor      Color
	AvatarDecoration *AvatarDecoration
	Locale           Locale
	PublicFlags      UserFlags
}

// ZeroUser stands in for "no user" on fields serialized with the
// default-entity putter. It maps to null on the wire.
var ZeroUser = &User{Locale: DefaultLocale}

// NewUser builds an unregistered user from options. Every option validates
// its value; all violations are reported together.
func NewUser(options ...UserOption) (*User, error) {
	user := &User{Locale: DefaultLocale}
	if err := applyOptions(user, options); err != nil {
		return nil, err
	}
	return user, nil
}

// UserFromData builds an unregistered user from a wire payload. Callers
// holding a Registry want Registry.UserFromData, which interns the result.
func UserFromData(data codec.Payload) *User {
	user := &User{}
	user.setFromData(data)
	return user
}

func (u *User) setFromData(data codec.Payload) {
	u.ID = fieldUserID.Parse(data)
	u.Name = fieldUserName.Parse(data)
	u.Discriminator = fieldUserDiscriminator.Parse(data)
	u.Bot = fieldUserBot.Parse(data)
	u.BannerColor = fieldUserBannerColor.Parse(data)
	u.AvatarDecoration = parseUserDecoration(data)
	u.Locale = fieldUserLocale.Parse(data)
	u.PublicFlags = fieldUserPublicFlags.Parse(data)
}

func parseUserDecoration(data codec.Payload) *AvatarDecoration {
	if nested, ok := codec.WireObject(data["avatar_decoration_data"]); ok {
		return AvatarDecorationFromData(nested)
	}
	return nil
}

// ToData serializes the user. The identifier and the other Discord-assigned
// attributes are emitted only when includeInternals is set.
func (u *User) ToData(defaults, includeInternals bool) codec.Payload {
	data := codec.Payload{}
	data = fieldUserName.Put(u.Name, data, defaults)
	data = fieldUserBannerColor.Put(u.BannerColor, data, defaults)
	data = putUserDecoration(u.AvatarDecoration, data, defaults, includeInternals)
	data = fieldUserLocale.Put(u.Locale, data, defaults)
	if includeInternals {
		data = fieldUserID.Put(u.ID, data, defaults)
		data = fieldUserDiscriminator.Put(u.Discriminator, data, defaults)
		data = fieldUserBot.Put(u.Bot, data, defaults)
		data = fieldUserPublicFlags.Put(u.PublicFlags, data, defaults)
	}
	return data
}

// DifferenceUpdate hydrates the user from data and returns the previous
// values of the attributes that changed, keyed by attribute name.
func (u *User) DifferenceUpdate(data codec.Payload) map[string]any {
	old := map[string]any{}
	if name := fieldUserName.Parse(data); name != u.Name {
		old["name"] = u.Name
		u.Name = name
	}
	if tag := fieldUserDiscriminator.Parse(data); tag != u.Discriminator {
		old["discriminator"] = u.Discriminator
		u.Discriminator = tag
	}
	if bot := fieldUserBot.Parse(data); bot != u.Bot {
		old["bot"] = u.Bot
		u.Bot = bot
	}
	if color := fieldUserBannerColor.Parse(data); color != u.BannerColor {
		old["banner_color"] = u.BannerColor
		u.BannerColor = color
	}
	if decoration := parseUserDecoration(data); !u.AvatarDecoration.Equal(decoration) {
		old["avatar_decoration"] = u.AvatarDecoration
		u.AvatarDecoration = decoration
	}
	if locale := fieldUserLocale.Parse(data); locale != u.Locale {
		old["locale"] = u.Locale
		u.Locale = locale
	}
	if flags := fieldUserPublicFlags.Parse(data); flags != u.PublicFlags {
		old["public_flags"] = u.PublicFlags
		u.PublicFlags = flags
	}
	return old
}

// Partial reports whether the user still awaits its first full payload.
func (u *User) Partial() bool { return u.Name == "" }

// RawID implements codec.Identifiable.
func (u *User) RawID() uint64 { return uint64(u.ID) }

// Mention formats the user as an in-message mention.
func (u *User) Mention() string { return "<@" + u.ID.String() + ">" }

// Copy returns an independent, unregistered copy.
func (u *User) Copy() *User {
	copied := *u
	copied.AvatarDecoration = u.AvatarDecoration.Copy()
	return &copied
}

// CopyWith returns an independent, unregistered copy with the given
// attributes replaced.
func (u *User) CopyWith(options ...UserOption) (*User, error) {
	copied := u.Copy()
	if err := applyOptions(copied, options); err != nil {
		return nil, err
	}
	return copied, nil
}

// Equal reports structural equality over the declared attributes.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.ID == other.ID &&
		u.Name == other.Name &&
		u.Discriminator == other.Discriminator &&
		u.Bot == other.Bot &&
		u.BannerColor == other.BannerColor &&
		u.AvatarDecoration.Equal(other.AvatarDecoration) &&
		u.Locale == other.Locale &&
		u.PublicFlags == other.PublicFlags
}

// Hash accumulates the declared attributes with XOR, so the result does not
// depend on attribute ordering.
func (u *User) Hash() uint64 {
	return uint64(u.ID) ^
		hashString(u.Name) ^
		uint64(u.Discriminator)<<26 ^
		hashBool(u.Bot, 1) ^
		uint64(u.BannerColor)<<2 ^
		u.AvatarDecoration.Hash() ^
		hashString(string(u.Locale)) ^
		uint64(u.PublicFlags)<<7
}
