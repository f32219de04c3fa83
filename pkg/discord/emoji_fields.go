package discord

import (
	"strings"
	"unicode/utf8"

	"cordcore/pkg/codec"
)

// Field codecs for the emoji schema. Names are restricted to the character
// set Discord accepts for custom emoji.
var (
	fieldEmojiID       = codec.EntityID[Snowflake]("id")
	fieldEmojiGuildID  = codec.EntityID[Snowflake]("guild_id")
	fieldEmojiAnimated = codec.Bool("animated", false)
	fieldEmojiManaged  = codec.Bool("managed", false)
	fieldEmojiName     = codec.ForceString("name").
				WithValidate(validateEmojiName)
	fieldEmojiAvailable     = codec.Bool("available", true)
	fieldEmojiRequireColons = codec.Bool("require_colons", true)
	fieldEmojiRoleIDs       = codec.EntityIDArray[Snowflake]("roles")
	fieldEmojiUnicode       = codec.NullableString("unicode")

	putEmojiUser = codec.PutDefaultInternalEntity("user", ZeroUser)
)

// validateEmojiName drops the characters Discord strips from custom emoji
// names, then bounds what remains. An input reduced to nothing validates to
// the unset name rather than failing, matching what uploading such a name
// produces.
func validateEmojiName(value any) (string, error) {
	name, err := codec.StringValidator("name", 0, 0)(value)
	if err != nil {
		return "", err
	}
	var filtered strings.Builder
	for _, r := range name {
		if r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			filtered.WriteRune(r)
		}
	}
	name = filtered.String()
	if name == "" {
		return "", nil
	}
	if length := utf8.RuneCountInString(name); length < 2 || length > 32 {
		return "", &codec.ValueError{Name: "name", Requirement: "length in [2, 32] after filtering", Value: value}
	}
	return name, nil
}

func validateEmojiUser(value any) (*User, error) {
	switch v := value.(type) {
	case nil:
		return ZeroUser, nil
	case *User:
		if v == nil {
			return ZeroUser, nil
		}
		return v, nil
	default:
		return nil, &codec.TypeError{Name: "user", Expected: "a User or nil", Value: value}
	}
}

// emojiAttributes maps attribute names to validating setters, shared by
// precreation and the option constructors.
var emojiAttributes = map[string]func(*Emoji, any) error{
	"animated":       attrSetter(fieldEmojiAnimated, func(e *Emoji, v bool) { e.Animated = v }),
	"available":      attrSetter(fieldEmojiAvailable, func(e *Emoji, v bool) { e.Available = v }),
	"managed":        attrSetter(fieldEmojiManaged, func(e *Emoji, v bool) { e.Managed = v }),
	"name":           attrSetter(fieldEmojiName, func(e *Emoji, v string) { e.Name = v }),
	"require_colons": attrSetter(fieldEmojiRequireColons, func(e *Emoji, v bool) { e.RequireColons = v }),
	"role_ids":       attrSetter(fieldEmojiRoleIDs, func(e *Emoji, v []Snowflake) { e.RoleIDs = v }),
	"unicode":        attrSetter(fieldEmojiUnicode, func(e *Emoji, v string) { e.Unicode = v }),
	"user": func(e *Emoji, value any) error {
		user, err := validateEmojiUser(value)
		if err != nil {
			return err
		}
		e.User = user
		return nil
	},
}

// EmojiOption configures one attribute on an emoji under construction.
type EmojiOption func(*Emoji) error

func emojiOption(name string, value any) EmojiOption {
	return func(e *Emoji) error { return emojiAttributes[name](e, value) }
}

// EmojiAnimated marks the emoji as animated.
func EmojiAnimated(animated bool) EmojiOption { return emojiOption("animated", animated) }

// EmojiAvailable marks the emoji as usable.
func EmojiAvailable(available bool) EmojiOption { return emojiOption("available", available) }

// EmojiManaged marks the emoji as integration-owned.
func EmojiManaged(managed bool) EmojiOption { return emojiOption("managed", managed) }

// EmojiName sets the emoji name.
func EmojiName(name string) EmojiOption { return emojiOption("name", name) }

// EmojiRequireColons requires colon syntax to use the emoji.
func EmojiRequireColons(require bool) EmojiOption { return emojiOption("require_colons", require) }

// EmojiRoleIDs restricts the emoji to the given roles.
func EmojiRoleIDs(roleIDs []Snowflake) EmojiOption { return emojiOption("role_ids", roleIDs) }

// EmojiUnicode marks the emoji as a builtin one carrying the given rune
// sequence instead of a custom asset.
func EmojiUnicode(unicode string) EmojiOption { return emojiOption("unicode", unicode) }

// EmojiUser records who uploaded the emoji.
func EmojiUser(user *User) EmojiOption { return emojiOption("user", user) }
