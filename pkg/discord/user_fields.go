package discord

import (
	"fmt"
	"strconv"

	"cordcore/pkg/codec"
)

// Field codecs for the user schema. Discriminators travel as zero-padded
// strings ("0007"), banner colors as the raw accent_color integer.
var (
	fieldUserID   = codec.EntityID[Snowflake]("id")
	fieldUserName = codec.ForceString("username").
			WithValidate(codec.StringValidator("name", 2, 32))
	fieldUserDiscriminator = codec.OptionalIntPostprocess("discriminator", 0, func(value int) any {
		return fmt.Sprintf("%04d", value)
	}).
		WithParse(parseDiscriminator).
		WithValidate(codec.IntCondValidator("discriminator", func(value int) bool {
			return value >= 0 && value <= 9999
		}, "in range [0, 9999]"))
	fieldUserBot         = codec.Bool("bot", false)
	fieldUserBannerColor = codec.NewField("accent_color", parseBannerColor, putBannerColor, colorValidator("banner_color"))
	fieldUserLocale      = codec.StringEnum("locale", DefaultLocale)
	fieldUserPublicFlags = codec.Flag[UserFlags]("public_flags")

	putUserDecoration = codec.PutOptionalEntity[*AvatarDecoration]("avatar_decoration_data")
)

func parseDiscriminator(data codec.Payload) int {
	switch v := data["discriminator"].(type) {
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		if n, ok := codec.WireInt(v); ok {
			return int(n)
		}
		return 0
	}
}

func parseBannerColor(data codec.Payload) Color {
	if value, ok := codec.WireInt(data["accent_color"]); ok {
		return Color(value)
	}
	return 0
}

func putBannerColor(value Color, data codec.Payload, defaults bool) codec.Payload {
	if value != 0 {
		data["accent_color"] = int(value)
	} else if defaults {
		data["accent_color"] = nil
	}
	return data
}

func validateUserDecoration(value any) (*AvatarDecoration, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *AvatarDecoration:
		return v, nil
	default:
		return nil, &codec.TypeError{Name: "avatar_decoration", Expected: "an AvatarDecoration or nil", Value: value}
	}
}

// userAttributes maps attribute names to validating setters. Precreation
// and the typed option constructors both funnel through this table.
var userAttributes = map[string]func(*User, any) error{
	"name":          attrSetter(fieldUserName, func(u *User, v string) { u.Name = v }),
	"discriminator": attrSetter(fieldUserDiscriminator, func(u *User, v int) { u.Discriminator = v }),
	"bot":           attrSetter(fieldUserBot, func(u *User, v bool) { u.Bot = v }),
	"banner_color":  attrSetter(fieldUserBannerColor, func(u *User, v Color) { u.BannerColor = v }),
	"locale":        attrSetter(fieldUserLocale, func(u *User, v Locale) { u.Locale = v }),
	"public_flags":  attrSetter(fieldUserPublicFlags, func(u *User, v UserFlags) { u.PublicFlags = v }),
	"avatar_decoration": func(u *User, value any) error {
		decoration, err := validateUserDecoration(value)
		if err != nil {
			return err
		}
		u.AvatarDecoration = decoration
		return nil
	},
}

// UserOption configures one attribute on a user under construction.
type UserOption func(*User) error

func userOption(name string, value any) UserOption {
	return func(u *User) error { return userAttributes[name](u, value) }
}

// UserName sets the account name.
func UserName(name string) UserOption { return userOption("name", name) }

// UserDiscriminator sets the legacy four-digit tag.
func UserDiscriminator(tag int) UserOption { return userOption("discriminator", tag) }

// UserBot marks the account as application-owned.
func UserBot(bot bool) UserOption { return userOption("bot", bot) }

// UserBannerColor sets the profile banner color.
func UserBannerColor(color Color) UserOption { return userOption("banner_color", color) }

// UserLocale sets the interface language.
func UserLocale(locale Locale) UserOption { return userOption("locale", locale) }

// UserPublicFlags sets the public account flags.
func UserPublicFlags(flags UserFlags) UserOption { return userOption("public_flags", flags) }

// UserAvatarDecoration sets the avatar decoration.
func UserAvatarDecoration(decoration *AvatarDecoration) UserOption {
	return userOption("avatar_decoration", decoration)
}
