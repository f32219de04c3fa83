package archive

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"cordcore/pkg/codec"
	"cordcore/pkg/discord"
	"cordcore/pkg/discord/audit"
)

// BatchContentType is the MIME type for archived audit batches.
const BatchContentType = "application/x-ndjson"

// Sink writes audit log batches to an archive store. Each batch becomes one
// JSON Lines object keyed audit/<guild>/<ULID>.jsonl; ULID keys make batches
// sort chronologically within a guild prefix. Batches are never rewritten.
type Sink struct {
	store Store

	mu      sync.Mutex
	now     func() time.Time
	entropy *rand.Rand
}

// NewSink returns a sink writing batches to store.
func NewSink(store Store) *Sink {
	return &Sink{
		store:   store,
		now:     time.Now,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Put archives entries as one batch for guildID and returns the stored
// batch metadata. Empty batches are rejected.
func (s *Sink) Put(ctx context.Context, guildID discord.Snowflake, entries []*audit.Entry) (Info, error) {
	if len(entries) == 0 {
		return Info{}, fmt.Errorf("empty audit batch for guild %s", guildID)
	}
	var buf bytes.Buffer
	for _, entry := range entries {
		line, err := json.Marshal(entry.ToData(true, true))
		if err != nil {
			return Info{}, fmt.Errorf("encode audit entry %s: %w", entry.ID, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	opts := PutOptions{
		ContentType: BatchContentType,
		Metadata: map[string]string{
			"guild_id": guildID.String(),
			"entries":  strconv.Itoa(len(entries)),
		},
	}
	return s.store.Put(ctx, s.batchKey(guildID), &buf, opts)
}

// List returns the stored batches for guildID in key order, oldest first.
func (s *Sink) List(ctx context.Context, guildID discord.Snowflake) ([]Info, error) {
	return s.store.List(ctx, fmt.Sprintf("audit/%s/", guildID))
}

// Read loads one batch and decodes its entries.
func (s *Sink) Read(ctx context.Context, key string) ([]*audit.Entry, error) {
	_, rc, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	var entries []*audit.Entry
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var payload codec.Payload
		if err := json.Unmarshal(line, &payload); err != nil {
			return nil, fmt.Errorf("decode batch line in %s: %w", key, err)
		}
		entries = append(entries, audit.EntryFromData(payload, 0))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan batch %s: %w", key, err)
	}
	return entries, nil
}

func (s *Sink) batchKey(guildID discord.Snowflake) string {
	s.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
	s.mu.Unlock()
	return fmt.Sprintf("audit/%s/%s.jsonl", guildID, id)
}
