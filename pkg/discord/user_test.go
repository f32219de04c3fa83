package discord

import (
	"reflect"
	"strings"
	"testing"

	"cordcore/pkg/codec"
)

func TestNewUser(t *testing.T) {
	decoration := &AvatarDecoration{Asset: "a_x", SKUID: 555}
	user, err := NewUser(
		UserName("koishi"),
		UserDiscriminator(7),
		UserBot(true),
		UserBannerColor(ColorFromRGB(0xdc, 0x14, 0x3c)),
		UserLocale(LocaleHungarian),
		UserPublicFlags(UserFlagStaff),
		UserAvatarDecoration(decoration),
	)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if user.Name != "koishi" || user.Discriminator != 7 || !user.Bot {
		t.Fatalf("user = %+v", user)
	}
	if user.BannerColor != 0xdc143c || user.Locale != LocaleHungarian {
		t.Fatalf("user = %+v", user)
	}
	if !user.AvatarDecoration.Equal(decoration) {
		t.Fatalf("decoration = %+v", user.AvatarDecoration)
	}
}

func TestNewUserCollectsAllViolations(t *testing.T) {
	_, err := NewUser(UserName("x"), UserDiscriminator(-3))
	if err == nil {
		t.Fatal("violations not reported")
	}
}

func TestNewUserDefaults(t *testing.T) {
	user, err := NewUser()
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if user.Locale != DefaultLocale {
		t.Fatalf("locale = %q", user.Locale)
	}
	if !user.Partial() {
		t.Fatal("nameless user not partial")
	}
}

func TestUserFromData(t *testing.T) {
	user := UserFromData(codec.Payload{
		"id":            "202302150000",
		"username":      "koishi",
		"discriminator": "0007",
		"bot":           true,
		"accent_color":  float64(14423100),
		"public_flags":  float64(1),
		"locale":        "hu",
		"avatar_decoration_data": map[string]any{
			"asset":  "a_x",
			"sku_id": "555",
		},
	})
	if user.ID != 202302150000 || user.Name != "koishi" {
		t.Fatalf("user = %+v", user)
	}
	if user.Discriminator != 7 {
		t.Fatalf("discriminator = %d, want 7", user.Discriminator)
	}
	if !user.Bot || user.BannerColor != 14423100 || !user.PublicFlags.Has(UserFlagStaff) {
		t.Fatalf("user = %+v", user)
	}
	if user.Locale != LocaleHungarian {
		t.Fatalf("locale = %q", user.Locale)
	}
	if user.AvatarDecoration == nil || user.AvatarDecoration.Asset != "a_x" || user.AvatarDecoration.SKUID != 555 {
		t.Fatalf("decoration = %+v", user.AvatarDecoration)
	}
	if user.Partial() {
		t.Fatal("hydrated user still partial")
	}
}

func TestUserToDataShapes(t *testing.T) {
	user := &User{
		ID:            202302150000,
		Name:          "koishi",
		Discriminator: 7,
		Bot:           true,
		BannerColor:   14423100,
		Locale:        LocaleHungarian,
		PublicFlags:   UserFlagStaff,
	}

	got := user.ToData(false, false)
	want := codec.Payload{
		"username":     "koishi",
		"accent_color": 14423100,
		"locale":       "hu",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("external form = %v, want %v", got, want)
	}

	got = user.ToData(false, true)
	want = codec.Payload{
		"username":      "koishi",
		"accent_color":  14423100,
		"locale":        "hu",
		"id":            "202302150000",
		"discriminator": "0007",
		"bot":           true,
		"public_flags":  uint64(1),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("internal form = %v, want %v", got, want)
	}
}

func TestUserRoundTripWithInternals(t *testing.T) {
	original := UserFromData(codec.Payload{
		"id":            "202302150001",
		"username":      "satori",
		"discriminator": "1234",
		"accent_color":  float64(0x9966cc),
		"avatar_decoration_data": map[string]any{
			"asset": "a_y",
		},
	})
	reparsed := UserFromData(original.ToData(true, true))
	if !reparsed.Equal(original) {
		t.Fatalf("round trip drifted:\n  original %+v\n  reparsed %+v", original, reparsed)
	}
	if reparsed.Hash() != original.Hash() {
		t.Fatal("equal users hash apart")
	}
}

func TestUserCopyWith(t *testing.T) {
	user, err := NewUser(UserName("koishi"), UserBannerColor(0x112233))
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	derived, err := user.CopyWith(UserName("satori"))
	if err != nil {
		t.Fatalf("CopyWith: %v", err)
	}
	if derived.Name != "satori" || derived.BannerColor != 0x112233 {
		t.Fatalf("derived = %+v", derived)
	}
	if user.Name != "koishi" {
		t.Fatal("CopyWith mutated the receiver")
	}
	if _, err := user.CopyWith(UserDiscriminator(123456)); err == nil {
		t.Fatal("out-of-range discriminator accepted")
	}

	copied := user.Copy()
	if copied == user {
		t.Fatal("Copy returned the receiver")
	}
	if !copied.Equal(user) {
		t.Fatal("copy not equal to the original")
	}
	if copied.Hash() != user.Hash() {
		t.Fatal("copy hashes apart")
	}
}

func TestUserCopyDetachesDecoration(t *testing.T) {
	user, err := NewUser(UserAvatarDecoration(&AvatarDecoration{Asset: "a_x"}))
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	copied := user.Copy()
	copied.AvatarDecoration.Asset = "changed"
	if user.AvatarDecoration.Asset != "a_x" {
		t.Fatal("copy shares the decoration")
	}
}

func TestUserDifferenceUpdate(t *testing.T) {
	user := UserFromData(codec.Payload{"id": "7", "username": "koishi", "bot": true})
	old := user.DifferenceUpdate(codec.Payload{"username": "satori", "bot": true, "public_flags": float64(1)})
	want := map[string]any{"name": "koishi", "public_flags": UserFlags(0)}
	if !reflect.DeepEqual(old, want) {
		t.Fatalf("old = %v, want %v", old, want)
	}
	if user.Name != "satori" || !user.Bot || user.PublicFlags != 1 {
		t.Fatalf("user after update = %+v", user)
	}
}

func TestUserMention(t *testing.T) {
	user := &User{ID: 202302150000}
	if got := user.Mention(); got != "<@202302150000>" {
		t.Fatalf("Mention() = %q", got)
	}
}

func TestPrecreateAttributesRejectUnknownNames(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.PrecreateUser(11, Attributes{"nickname": "ko"})
	if err == nil {
		t.Fatal("unknown attribute accepted")
	}
	if !strings.Contains(err.Error(), "nickname") {
		t.Fatalf("error does not name the offending attribute: %v", err)
	}
}
