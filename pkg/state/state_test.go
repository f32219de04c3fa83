package state

import (
	"strings"
	"testing"
	"time"

	"cordcore/pkg/codec"
)

func TestCheckFormatVersion(t *testing.T) {
	cases := []struct {
		name    string
		version string
		wantErr string
	}{
		{name: "current", version: FormatVersion},
		{name: "same major newer minor", version: "1.9.3"},
		{name: "newer major", version: "2.0.0", wantErr: "newer than supported"},
		{name: "older major", version: "0.4.0", wantErr: "predates supported"},
		{name: "empty", version: "", wantErr: "missing format version"},
		{name: "garbage", version: "one.two", wantErr: "parse format version"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckFormatVersion(tc.version)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("CheckFormatVersion(%q): %v", tc.version, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("CheckFormatVersion(%q) = %v, want %q", tc.version, err, tc.wantErr)
			}
		})
	}
}

func TestEncodeDecodeBuckets(t *testing.T) {
	created := time.Date(2016, 5, 14, 13, 20, 0, 0, time.UTC)
	snap := Snapshot{
		FormatVersion: FormatVersion,
		CreatedAt:     created,
		Users: []codec.Payload{
			{"id": "202302160015", "username": "suika", "bot": true},
		},
		Guilds: []codec.Payload{
			{"id": "202306080000", "name": "Gensokyo"},
		},
	}

	buckets, err := EncodeBuckets(snap)
	if err != nil {
		t.Fatalf("EncodeBuckets: %v", err)
	}
	for _, name := range Buckets() {
		if _, ok := buckets[name]; !ok {
			t.Fatalf("bucket %s missing from encoding", name)
		}
	}

	decoded, err := DecodeBuckets(buckets)
	if err != nil {
		t.Fatalf("DecodeBuckets: %v", err)
	}
	if decoded.FormatVersion != FormatVersion {
		t.Fatalf("format version = %q, want %q", decoded.FormatVersion, FormatVersion)
	}
	if !decoded.CreatedAt.Equal(created) {
		t.Fatalf("created at = %v, want %v", decoded.CreatedAt, created)
	}
	if len(decoded.Users) != 1 || len(decoded.Guilds) != 1 {
		t.Fatalf("decoded %d users and %d guilds, want 1 and 1", len(decoded.Users), len(decoded.Guilds))
	}
	if decoded.Users[0]["username"] != "suika" || decoded.Users[0]["bot"] != true {
		t.Fatalf("user payload mangled: %v", decoded.Users[0])
	}
	if decoded.Roles != nil || decoded.Emojis != nil {
		t.Fatalf("expected empty buckets to stay empty, got roles=%v emojis=%v", decoded.Roles, decoded.Emojis)
	}
}

func TestDecodeBucketsSkipsUnknown(t *testing.T) {
	buckets, err := EncodeBuckets(Snapshot{FormatVersion: FormatVersion})
	if err != nil {
		t.Fatalf("EncodeBuckets: %v", err)
	}
	buckets["stickers"] = []byte(`[{"id":"7"}]`)
	decoded, err := DecodeBuckets(buckets)
	if err != nil {
		t.Fatalf("DecodeBuckets: %v", err)
	}
	if !decoded.Empty() {
		t.Fatalf("expected empty snapshot, got %+v", decoded)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	var snap Snapshot
	if !snap.Empty() {
		t.Fatalf("zero snapshot should be empty")
	}
	snap.Roles = []codec.Payload{{"id": "1"}}
	if snap.Empty() {
		t.Fatalf("snapshot with a role should not be empty")
	}
}
