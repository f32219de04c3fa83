package discord

// Permission is the guild permission bitset. Sixty-four bit width rules out
// JSON numbers, so the wire transports permissions as decimal strings.
type Permission uint64

const (
	PermissionCreateInstantInvite Permission = 1 << 0
	PermissionKickMembers         Permission = 1 << 1
	PermissionBanMembers          Permission = 1 << 2
	PermissionAdministrator       Permission = 1 << 3
	PermissionManageChannels      Permission = 1 << 4
	PermissionManageGuild         Permission = 1 << 5
	PermissionAddReactions        Permission = 1 << 6
	PermissionViewAuditLog        Permission = 1 << 7
	PermissionViewChannel         Permission = 1 << 10
	PermissionSendMessages        Permission = 1 << 11
	PermissionManageMessages      Permission = 1 << 13
	PermissionAttachFiles         Permission = 1 << 15
	PermissionMentionEveryone     Permission = 1 << 17
	PermissionUseExternalEmojis   Permission = 1 << 18
	PermissionConnect             Permission = 1 << 20
	PermissionSpeak               Permission = 1 << 21
	PermissionManageRoles         Permission = 1 << 28
	PermissionManageWebhooks      Permission = 1 << 29
	PermissionManageExpressions   Permission = 1 << 30
	PermissionModerateMembers     Permission = 1 << 40
)

// Has reports whether every bit of mask is set.
func (p Permission) Has(mask Permission) bool { return p&mask == mask }

// UserFlags is the public account flag bitset.
type UserFlags uint64

const (
	UserFlagStaff                UserFlags = 1 << 0
	UserFlagPartner              UserFlags = 1 << 1
	UserFlagHypesquad            UserFlags = 1 << 2
	UserFlagBugHunterLevel1      UserFlags = 1 << 3
	UserFlagHypesquadBravery     UserFlags = 1 << 6
	UserFlagHypesquadBrilliance  UserFlags = 1 << 7
	UserFlagHypesquadBalance     UserFlags = 1 << 8
	UserFlagEarlySupporter       UserFlags = 1 << 9
	UserFlagTeamUser             UserFlags = 1 << 10
	UserFlagBugHunterLevel2      UserFlags = 1 << 14
	UserFlagVerifiedBot          UserFlags = 1 << 16
	UserFlagVerifiedBotDeveloper UserFlags = 1 << 17
	UserFlagCertifiedModerator   UserFlags = 1 << 18
	UserFlagBotHTTPInteractions  UserFlags = 1 << 19
	UserFlagActiveDeveloper      UserFlags = 1 << 22
)

// Has reports whether every bit of mask is set.
func (f UserFlags) Has(mask UserFlags) bool { return f&mask == mask }

// SystemChannelFlags controls which automatic messages a guild's system
// channel suppresses.
type SystemChannelFlags uint64

const (
	SystemChannelFlagSuppressJoinNotifications       SystemChannelFlags = 1 << 0
	SystemChannelFlagSuppressPremiumSubscriptions    SystemChannelFlags = 1 << 1
	SystemChannelFlagSuppressGuildReminders          SystemChannelFlags = 1 << 2
	SystemChannelFlagSuppressJoinNotificationReplies SystemChannelFlags = 1 << 3
)

// Has reports whether every bit of mask is set.
func (f SystemChannelFlags) Has(mask SystemChannelFlags) bool { return f&mask == mask }
