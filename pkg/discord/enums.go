package discord

import "strconv"

// Enumeration types mirror the wire values one to one. Unknown wire values
// convert into unlisted members instead of failing, so payloads produced by
// a newer API version survive a parse/put round trip unchanged. Name and
// IsKnown report against the registered members only.

// VerificationLevel gates what a member must verify before participating.
type VerificationLevel int

const (
	VerificationNone VerificationLevel = iota
	VerificationLow
	VerificationMedium
	VerificationHigh
	VerificationVeryHigh
)

var verificationLevelNames = map[VerificationLevel]string{
	VerificationNone:     "none",
	VerificationLow:      "low",
	VerificationMedium:   "medium",
	VerificationHigh:     "high",
	VerificationVeryHigh: "very high",
}

// Name returns the registered member name, or the decimal value for
// members minted from unknown wire values.
func (l VerificationLevel) Name() string { return enumName(verificationLevelNames, l) }

// IsKnown reports whether the member is registered.
func (l VerificationLevel) IsKnown() bool { _, ok := verificationLevelNames[l]; return ok }

// MessageNotificationLevel selects which messages ping members by default.
type MessageNotificationLevel int

const (
	NotifyAllMessages MessageNotificationLevel = iota
	NotifyOnlyMentions
	NotifyNoMessages
)

var messageNotificationLevelNames = map[MessageNotificationLevel]string{
	NotifyAllMessages:  "all messages",
	NotifyOnlyMentions: "only mentions",
	NotifyNoMessages:   "no messages",
}

func (l MessageNotificationLevel) Name() string { return enumName(messageNotificationLevelNames, l) }

func (l MessageNotificationLevel) IsKnown() bool {
	_, ok := messageNotificationLevelNames[l]
	return ok
}

// MfaLevel is the multi-factor requirement for moderation actions.
type MfaLevel int

const (
	MfaNone MfaLevel = iota
	MfaElevated
)

var mfaLevelNames = map[MfaLevel]string{
	MfaNone:     "none",
	MfaElevated: "elevated",
}

func (l MfaLevel) Name() string { return enumName(mfaLevelNames, l) }

func (l MfaLevel) IsKnown() bool { _, ok := mfaLevelNames[l]; return ok }

// ContentFilterLevel selects whose messages pass the explicit media filter.
type ContentFilterLevel int

const (
	ContentFilterDisabled ContentFilterLevel = iota
	ContentFilterNoRole
	ContentFilterEveryone
)

var contentFilterLevelNames = map[ContentFilterLevel]string{
	ContentFilterDisabled: "disabled",
	ContentFilterNoRole:   "no role",
	ContentFilterEveryone: "everyone",
}

func (l ContentFilterLevel) Name() string { return enumName(contentFilterLevelNames, l) }

func (l ContentFilterLevel) IsKnown() bool { _, ok := contentFilterLevelNames[l]; return ok }

// RoleManagerType tells what kind of integration owns a managed role.
type RoleManagerType int

const (
	RoleManagerNone RoleManagerType = iota
	RoleManagerUnset
	RoleManagerBot
	RoleManagerBooster
	RoleManagerIntegration
)

var roleManagerTypeNames = map[RoleManagerType]string{
	RoleManagerNone:        "none",
	RoleManagerUnset:       "unset",
	RoleManagerBot:         "bot",
	RoleManagerBooster:     "booster",
	RoleManagerIntegration: "integration",
}

func (t RoleManagerType) Name() string { return enumName(roleManagerTypeNames, t) }

func (t RoleManagerType) IsKnown() bool { _, ok := roleManagerTypeNames[t]; return ok }

func enumName[E ~int](names map[E]string, member E) string {
	if name, ok := names[member]; ok {
		return name
	}
	return strconv.Itoa(int(member))
}

// Locale is an interface language tag.
type Locale string

const (
	LocaleEnglishUS  Locale = "en-US"
	LocaleEnglishGB  Locale = "en-GB"
	LocaleGerman     Locale = "de"
	LocaleSpanish    Locale = "es-ES"
	LocaleFrench     Locale = "fr"
	LocaleHungarian  Locale = "hu"
	LocaleJapanese   Locale = "ja"
	LocaleKorean     Locale = "ko"
	LocalePolish     Locale = "pl"
	LocalePortuguese Locale = "pt-BR"
	LocaleRussian    Locale = "ru"
	LocaleChineseCN  Locale = "zh-CN"
)

// DefaultLocale is what Discord assumes when an account never picked one.
const DefaultLocale = LocaleEnglishUS

var knownLocales = map[Locale]struct{}{
	LocaleEnglishUS: {}, LocaleEnglishGB: {}, LocaleGerman: {}, LocaleSpanish: {},
	LocaleFrench: {}, LocaleHungarian: {}, LocaleJapanese: {}, LocaleKorean: {},
	LocalePolish: {}, LocalePortuguese: {}, LocaleRussian: {}, LocaleChineseCN: {},
}

// IsKnown reports whether the tag is registered.
func (l Locale) IsKnown() bool { _, ok := knownLocales[l]; return ok }

// GuildFeature marks a capability enabled on a guild. Features appear and
// disappear server-side without notice, so unknown values are first class.
type GuildFeature string

const (
	FeatureAnimatedBanner  GuildFeature = "ANIMATED_BANNER"
	FeatureAnimatedIcon    GuildFeature = "ANIMATED_ICON"
	FeatureBanner          GuildFeature = "BANNER"
	FeatureCommunity       GuildFeature = "COMMUNITY"
	FeatureDiscoverable    GuildFeature = "DISCOVERABLE"
	FeatureInviteSplash    GuildFeature = "INVITE_SPLASH"
	FeatureNews            GuildFeature = "NEWS"
	FeaturePartnered       GuildFeature = "PARTNERED"
	FeatureVanityURL       GuildFeature = "VANITY_URL"
	FeatureVerified        GuildFeature = "VERIFIED"
	FeatureWelcomeScreen   GuildFeature = "WELCOME_SCREEN_ENABLED"
	FeatureMemberProfiles  GuildFeature = "MEMBER_PROFILES"
	FeatureRoleIcons       GuildFeature = "ROLE_ICONS"
	FeatureAutoModeration  GuildFeature = "AUTO_MODERATION"
	FeatureInvitesDisabled GuildFeature = "INVITES_DISABLED"
)

var knownGuildFeatures = map[GuildFeature]struct{}{
	FeatureAnimatedBanner: {}, FeatureAnimatedIcon: {}, FeatureBanner: {},
	FeatureCommunity: {}, FeatureDiscoverable: {}, FeatureInviteSplash: {},
	FeatureNews: {}, FeaturePartnered: {}, FeatureVanityURL: {},
	FeatureVerified: {}, FeatureWelcomeScreen: {}, FeatureMemberProfiles: {},
	FeatureRoleIcons: {}, FeatureAutoModeration: {}, FeatureInvitesDisabled: {},
}

// IsKnown reports whether the feature is registered.
func (f GuildFeature) IsKnown() bool { _, ok := knownGuildFeatures[f]; return ok }
