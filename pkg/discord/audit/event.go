package audit

import "strconv"

// Event tells what kind of action an audit log entry records. Unknown wire
// values convert into unlisted members instead of failing and round-trip
// unchanged.
type Event int

const (
	EventGuildUpdate Event = 1

	EventChannelCreate Event = 10
	EventChannelUpdate Event = 11
	EventChannelDelete Event = 12

	EventMemberKick       Event = 20
	EventMemberBanAdd     Event = 22
	EventMemberBanRemove  Event = 23
	EventMemberUpdate     Event = 24
	EventMemberRoleUpdate Event = 25

	EventRoleCreate Event = 30
	EventRoleUpdate Event = 31
	EventRoleDelete Event = 32

	EventWebhookCreate Event = 50
	EventWebhookUpdate Event = 51
	EventWebhookDelete Event = 52

	EventEmojiCreate Event = 60
	EventEmojiUpdate Event = 61
	EventEmojiDelete Event = 62
)

var eventNames = map[Event]string{
	EventGuildUpdate:      "guild update",
	EventChannelCreate:    "channel create",
	EventChannelUpdate:    "channel update",
	EventChannelDelete:    "channel delete",
	EventMemberKick:       "member kick",
	EventMemberBanAdd:     "member ban add",
	EventMemberBanRemove:  "member ban remove",
	EventMemberUpdate:     "member update",
	EventMemberRoleUpdate: "member role update",
	EventRoleCreate:       "role create",
	EventRoleUpdate:       "role update",
	EventRoleDelete:       "role delete",
	EventWebhookCreate:    "webhook create",
	EventWebhookUpdate:    "webhook update",
	EventWebhookDelete:    "webhook delete",
	EventEmojiCreate:      "emoji create",
	EventEmojiUpdate:      "emoji update",
	EventEmojiDelete:      "emoji delete",
}

// Name returns the registered member name, or the decimal value for members
// minted from unknown wire values.
func (e Event) Name() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return strconv.Itoa(int(e))
}

// IsKnown reports whether the member is registered.
func (e Event) IsKnown() bool { _, ok := eventNames[e]; return ok }
