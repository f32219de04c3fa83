// Package discord models the core Discord entities: users, roles, emojis
// and guilds, their field schemas built from cordcore/pkg/codec triples,
// and a Registry interning every entity by snowflake so that any number of
// wire payloads referencing one identifier resolve to one pointer.
package discord

import (
	"sync"

	"cordcore/pkg/codec"
)

// Registry is the identity cache. Entries are never evicted: a future
// payload may reference an entity by bare identifier, and the cache is the
// only way to resolve that reference back to the instance everyone else
// holds. All methods are safe for concurrent use; two racing lookups of an
// unseen identifier yield the same instance, never duplicates.
type Registry struct {
	mu     sync.RWMutex
	users  map[Snowflake]*User
	roles  map[Snowflake]*Role
	emojis map[Snowflake]*Emoji
	guilds map[Snowflake]*Guild
	stats  RegistryStats
}

// RegistryStats counts cache activity since construction.
type RegistryStats struct {
	// Hits counts lookups that resolved to an interned entity.
	Hits uint64
	// Misses counts lookups that interned a new entity.
	Misses uint64
	// Partials counts entities created from a bare identifier reference.
	Partials uint64
	// Precreates counts precreate calls, clobbering or not.
	Precreates uint64
	// Deletes counts delete calls that found their entity.
	Deletes uint64
}

// RegistryCounts reports how many entities of each kind are interned.
type RegistryCounts struct {
	Users  int
	Roles  int
	Emojis int
	Guilds int
}

// NewRegistry returns an empty identity cache.
func NewRegistry() *Registry {
	return &Registry{
		users:  map[Snowflake]*User{},
		roles:  map[Snowflake]*Role{},
		emojis: map[Snowflake]*Emoji{},
		guilds: map[Snowflake]*Guild{},
	}
}

// Stats returns a snapshot of the activity counters.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// Counts reports the interned entity counts per kind.
func (r *Registry) Counts() RegistryCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return RegistryCounts{
		Users:  len(r.users),
		Roles:  len(r.roles),
		Emojis: len(r.emojis),
		Guilds: len(r.guilds),
	}
}

// User returns the interned user, if any.
func (r *Registry) User(id Snowflake) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	return user, ok
}

// Role returns the interned role, if any.
func (r *Registry) Role(id Snowflake) (*Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[id]
	return role, ok
}

// Emoji returns the interned emoji, if any.
func (r *Registry) Emoji(id Snowflake) (*Emoji, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	emoji, ok := r.emojis[id]
	return emoji, ok
}

// Guild returns the interned guild, if any.
func (r *Registry) Guild(id Snowflake) (*Guild, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	guild, ok := r.guilds[id]
	return guild, ok
}

// EnsureUser returns the interned user for id, creating a partial one on
// first reference. The zero identifier resolves to ZeroUser uninterned.
func (r *Registry) EnsureUser(id Snowflake) *User {
	if id == 0 {
		return ZeroUser
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureUserLocked(id)
}

func (r *Registry) ensureUserLocked(id Snowflake) *User {
	if user, ok := r.users[id]; ok {
		r.stats.Hits++
		return user
	}
	user := &User{ID: id, Locale: DefaultLocale}
	r.users[id] = user
	r.stats.Misses++
	r.stats.Partials++
	return user
}

// EnsureRole returns the interned role for id, creating a partial one on
// first reference. The guild binding arrives with the owning guild's
// payload.
func (r *Registry) EnsureRole(id Snowflake) *Role {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role, ok := r.roles[id]; ok {
		r.stats.Hits++
		return role
	}
	role := &Role{ID: id}
	r.roles[id] = role
	r.stats.Misses++
	r.stats.Partials++
	return role
}

// EnsureEmoji returns the interned emoji for id, creating a partial one on
// first reference.
func (r *Registry) EnsureEmoji(id Snowflake) *Emoji {
	r.mu.Lock()
	defer r.mu.Unlock()
	if emoji, ok := r.emojis[id]; ok {
		r.stats.Hits++
		return emoji
	}
	emoji := &Emoji{ID: id, Available: true, RequireColons: true, User: ZeroUser}
	r.emojis[id] = emoji
	r.stats.Misses++
	r.stats.Partials++
	return emoji
}

// EnsureGuild returns the interned guild for id, creating a partial one on
// first reference. A partial guild reports unavailable until a payload
// proves otherwise.
func (r *Registry) EnsureGuild(id Snowflake) *Guild {
	r.mu.Lock()
	defer r.mu.Unlock()
	if guild, ok := r.guilds[id]; ok {
		r.stats.Hits++
		return guild
	}
	guild := &Guild{ID: id, Locale: DefaultLocale}
	r.guilds[id] = guild
	r.stats.Misses++
	r.stats.Partials++
	return guild
}

// UserFromData interns the payload's user. A cached instance is hydrated in
// place so existing references observe the update; the instance itself is
// never replaced. Payloads without an identifier build detached users.
func (r *Registry) UserFromData(data codec.Payload) *User {
	id := fieldUserID.Parse(data)
	if id == 0 {
		return UserFromData(data)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.userFromDataLocked(data, id)
}

func (r *Registry) userFromDataLocked(data codec.Payload, id Snowflake) *User {
	if cached, ok := r.users[id]; ok {
		r.stats.Hits++
		cached.setFromData(data)
		return cached
	}
	user := UserFromData(data)
	r.users[id] = user
	r.stats.Misses++
	return user
}

// RoleFromData interns the payload's role under the given guild. A cached
// instance is hydrated in place; the instance itself is never replaced.
func (r *Registry) RoleFromData(data codec.Payload, guildID Snowflake) *Role {
	id := fieldRoleID.Parse(data)
	if id == 0 {
		return RoleFromData(data, guildID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roleFromDataLocked(data, guildID, id)
}

func (r *Registry) roleFromDataLocked(data codec.Payload, guildID, id Snowflake) *Role {
	if cached, ok := r.roles[id]; ok {
		r.stats.Hits++
		cached.setFromData(data, guildID)
		return cached
	}
	role := RoleFromData(data, guildID)
	r.roles[id] = role
	r.stats.Misses++
	return role
}

// EmojiFromData interns the payload's emoji under the given guild, interning
// the uploader too. Builtin unicode emojis carry no identifier and build
// detached.
func (r *Registry) EmojiFromData(data codec.Payload, guildID Snowflake) *Emoji {
	id := fieldEmojiID.Parse(data)
	if id == 0 {
		return EmojiFromData(data, guildID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emojiFromDataLocked(data, guildID, id)
}

func (r *Registry) emojiFromDataLocked(data codec.Payload, guildID, id Snowflake) *Emoji {
	resolveUser := func(nested codec.Payload) *User {
		userID := fieldUserID.Parse(nested)
		if userID == 0 {
			return UserFromData(nested)
		}
		return r.userFromDataLocked(nested, userID)
	}
	if cached, ok := r.emojis[id]; ok {
		r.stats.Hits++
		cached.setFromData(data, guildID, resolveUser)
		return cached
	}
	emoji := &Emoji{}
	emoji.setFromData(data, guildID, resolveUser)
	r.emojis[id] = emoji
	r.stats.Misses++
	return emoji
}

// GuildFromData interns the payload's guild along with every role and emoji
// it owns. Cached instances at every level are hydrated in place.
func (r *Registry) GuildFromData(data codec.Payload) *Guild {
	id := fieldGuildID.Parse(data)
	if id == 0 {
		return GuildFromData(data)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resolveRole := func(nested codec.Payload, guildID Snowflake) *Role {
		roleID := fieldRoleID.Parse(nested)
		if roleID == 0 {
			return RoleFromData(nested, guildID)
		}
		return r.roleFromDataLocked(nested, guildID, roleID)
	}
	resolveEmoji := func(nested codec.Payload, guildID Snowflake) *Emoji {
		emojiID := fieldEmojiID.Parse(nested)
		if emojiID == 0 {
			return EmojiFromData(nested, guildID)
		}
		return r.emojiFromDataLocked(nested, guildID, emojiID)
	}
	if cached, ok := r.guilds[id]; ok {
		r.stats.Hits++
		cached.setFromData(data, resolveRole, resolveEmoji)
		return cached
	}
	guild := &Guild{}
	guild.setFromData(data, resolveRole, resolveEmoji)
	r.guilds[id] = guild
	r.stats.Misses++
	return guild
}

// PrecreateUser interns a user built from validated attributes. An already
// real instance is returned untouched, whatever the attributes say; a still
// partial one is hydrated by them. Unknown attribute names fail with a
// TypeError.
func (r *Registry) PrecreateUser(id Snowflake, attrs Attributes) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Precreates++
	if cached, ok := r.users[id]; ok {
		if !cached.Partial() {
			return cached, nil
		}
		staged := cached.Copy()
		if err := applyAttributes("user", userAttributes, staged, attrs); err != nil {
			return nil, err
		}
		*cached = *staged
		return cached, nil
	}
	user := &User{ID: id, Locale: DefaultLocale}
	if err := applyAttributes("user", userAttributes, user, attrs); err != nil {
		return nil, err
	}
	r.users[id] = user
	return user, nil
}

// PrecreateRole interns a role built from validated attributes, with the
// same non-clobbering contract as PrecreateUser.
func (r *Registry) PrecreateRole(id Snowflake, attrs Attributes) (*Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Precreates++
	if cached, ok := r.roles[id]; ok {
		if !cached.Partial() {
			return cached, nil
		}
		staged := cached.Copy()
		if err := applyAttributes("role", roleAttributes, staged, attrs); err != nil {
			return nil, err
		}
		*cached = *staged
		return cached, nil
	}
	role := &Role{ID: id}
	if err := applyAttributes("role", roleAttributes, role, attrs); err != nil {
		return nil, err
	}
	r.roles[id] = role
	return role, nil
}

// PrecreateEmoji interns an emoji built from validated attributes, with the
// same non-clobbering contract as PrecreateUser.
func (r *Registry) PrecreateEmoji(id Snowflake, attrs Attributes) (*Emoji, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Precreates++
	if cached, ok := r.emojis[id]; ok {
		if !cached.Partial() {
			return cached, nil
		}
		staged := cached.Copy()
		if err := applyAttributes("emoji", emojiAttributes, staged, attrs); err != nil {
			return nil, err
		}
		*cached = *staged
		return cached, nil
	}
	emoji := &Emoji{ID: id, Available: true, RequireColons: true, User: ZeroUser}
	if err := applyAttributes("emoji", emojiAttributes, emoji, attrs); err != nil {
		return nil, err
	}
	r.emojis[id] = emoji
	return emoji, nil
}

// PrecreateGuild interns a guild built from validated attributes, with the
// same non-clobbering contract as PrecreateUser.
func (r *Registry) PrecreateGuild(id Snowflake, attrs Attributes) (*Guild, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Precreates++
	if cached, ok := r.guilds[id]; ok {
		if !cached.Partial() {
			return cached, nil
		}
		staged := cached.Copy()
		if err := applyAttributes("guild", guildAttributes, staged, attrs); err != nil {
			return nil, err
		}
		*cached = *staged
		return cached, nil
	}
	guild := &Guild{ID: id, Locale: DefaultLocale}
	if err := applyAttributes("guild", guildAttributes, guild, attrs); err != nil {
		return nil, err
	}
	r.guilds[id] = guild
	return guild, nil
}

// DeleteRole detaches the role from its guild's collection. The role stays
// interned; references held elsewhere remain valid.
func (r *Registry) DeleteRole(id Snowflake) {
	r.mu.Lock()
	defer r.mu.Unlock()
	role, ok := r.roles[id]
	if !ok {
		return
	}
	r.stats.Deletes++
	if guild, ok := r.guilds[role.GuildID]; ok {
		delete(guild.Roles, id)
	}
}

// DeleteEmoji detaches the emoji from its guild's collection and marks it
// unavailable. The emoji stays interned.
func (r *Registry) DeleteEmoji(id Snowflake) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emoji, ok := r.emojis[id]
	if !ok {
		return
	}
	r.stats.Deletes++
	emoji.Available = false
	if guild, ok := r.guilds[emoji.GuildID]; ok {
		delete(guild.Emojis, id)
	}
}

// DeleteGuild marks the guild unavailable. The guild and everything it owns
// stay interned.
func (r *Registry) DeleteGuild(id Snowflake) {
	r.mu.Lock()
	defer r.mu.Unlock()
	guild, ok := r.guilds[id]
	if !ok {
		return
	}
	r.stats.Deletes++
	guild.Available = false
}
