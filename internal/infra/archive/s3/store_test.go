package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"cordcore/internal/archive/core"
)

// mockRoundTripper provides a fake S3 subset sufficient to exercise the
// adapter without network access, including paginated ListObjectsV2.
type mockRoundTripper struct{ state map[string]stored }

type stored struct {
	body        []byte
	contentType string
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) { //nolint:cyclop
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}
	if req.Method == http.MethodGet && strings.Contains(req.URL.RawQuery, "list-type=2") {
		prefix := req.URL.Query().Get("prefix")
		cont := req.URL.Query().Get("continuation-token")
		var keys []string
		for k := range m.state {
			if prefix == "" || strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString("<?xml version=\"1.0\"?><ListBucketResult>")
		if cont == "" && len(keys) > 1 {
			k := keys[0]
			st := m.state[k]
			b.WriteString("<IsTruncated>true</IsTruncated><NextContinuationToken>tok123</NextContinuationToken>")
			b.WriteString("<Contents><Key>")
			b.WriteString(k)
			b.WriteString("</Key><Size>")
			b.WriteString(fmt.Sprintf("%d", len(st.body)))
			b.WriteString("</Size><LastModified>2024-01-01T00:00:00Z</LastModified></Contents>")
		} else {
			b.WriteString("<IsTruncated>false</IsTruncated>")
			start := 0
			if cont != "" && len(keys) > 1 {
				start = 1
			}
			for _, k := range keys[start:] {
				st := m.state[k]
				b.WriteString("<Contents><Key>")
				b.WriteString(k)
				b.WriteString("</Key><Size>")
				b.WriteString(fmt.Sprintf("%d", len(st.body)))
				b.WriteString("</Size><LastModified>2024-01-01T00:00:00Z</LastModified></Contents>")
			}
		}
		b.WriteString("</ListBucketResult>")
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(b.String())), Header: http.Header{"Content-Type": {"application/xml"}}}, nil
	}
	switch req.Method {
	case http.MethodHead:
		if st, ok := m.state[key]; ok {
			return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{
				"Content-Length": {fmt.Sprintf("%d", len(st.body))},
				"Content-Type":   {st.contentType},
				"ETag":           {"\"etag123\""},
				"Last-Modified":  {time.Now().UTC().Format(http.TimeFormat)},
			}}, nil
		}
		return &http.Response{StatusCode: 404, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}, nil
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		if _, exists := m.state[key]; !exists {
			ct := req.Header.Get("Content-Type")
			if dec, ok := decodeChunked(body); ok {
				body = dec
			}
			m.state[key] = stored{body: body, contentType: ct}
		}
		return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{"ETag": {"\"etag\""}}}, nil
	case http.MethodGet:
		if st, ok := m.state[key]; ok {
			body := st.body
			if dec, ok := decodeChunked(body); ok {
				body = dec
			}
			return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewReader(body)), Header: http.Header{
				"Content-Length": {fmt.Sprintf("%d", len(body))},
				"Content-Type":   {st.contentType},
				"Last-Modified":  {time.Now().UTC().Format(http.TimeFormat)},
				"ETag":           {"\"etag\""},
			}}, nil
		}
		return &http.Response{StatusCode: 404, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}, nil
	}
	return &http.Response{StatusCode: 501, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}, nil
}

func newMockStore(t *testing.T) *Store {
	t.Helper()
	rt := &mockRoundTripper{state: make(map[string]stored)}
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	if err != nil {
		t.Fatalf("cfg: %v", err)
	}
	client := awsS3.NewFromConfig(cfg, func(o *awsS3.Options) {
		o.BaseEndpoint = aws.String("https://mock.s3.local")
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
	})
	return &Store{client: client, bucket: "test-bucket"}
}

func TestStore_MockedBasicFlow(t *testing.T) {
	store := newMockStore(t)
	ctx := context.Background()
	info, err := store.Put(ctx, "audit/7/batch.jsonl", bytes.NewReader([]byte("{\"id\":\"1\"}\n")), core.PutOptions{ContentType: "application/x-ndjson"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != "audit/7/batch.jsonl" || info.ContentType != "application/x-ndjson" || info.Size < 5 {
		t.Fatalf("unexpected info %#v", info)
	}
	_, err = store.Put(ctx, "audit/7/batch.jsonl", bytes.NewReader([]byte("ignored")), core.PutOptions{})
	if !errors.Is(err, core.ErrExists) {
		t.Fatalf("duplicate put err = %v, want ErrExists", err)
	}
	if _, err := store.Head(ctx, "audit/7/batch.jsonl"); err != nil {
		t.Fatalf("head: %v", err)
	}
	_, rc, err := store.Get(ctx, "audit/7/batch.jsonl")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != "{\"id\":\"1\"}\n" {
		t.Fatalf("get mismatch: %q", string(data))
	}
	list, err := store.List(ctx, "audit/7/")
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %+v", err, list)
	}
}

func TestStore_New(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")
	s, err := New(context.Background(), Config{Bucket: "bkt", Region: "us-east-1", Endpoint: "https://mock.s3.local", PathStyle: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Driver() != core.DriverS3 {
		t.Fatalf("expected DriverS3")
	}
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for missing bucket")
	}
}

func TestStore_OpenFromEnv(t *testing.T) {
	t.Setenv("CORDCORE_ARCHIVE_S3_BUCKET", "env-bucket")
	t.Setenv("CORDCORE_ARCHIVE_S3_REGION", "us-east-1")
	if _, err := OpenFromEnv(context.Background()); err != nil {
		t.Fatalf("OpenFromEnv: %v", err)
	}
	t.Setenv("CORDCORE_ARCHIVE_S3_BUCKET", "")
	if _, err := OpenFromEnv(context.Background()); err == nil {
		t.Fatalf("expected error when bucket unset")
	}
}

func TestStore_ErrorPaths(t *testing.T) {
	store := newMockStore(t)
	ctx := context.Background()
	if _, err := store.Head(ctx, "nope"); err == nil {
		t.Fatalf("expected head error for missing key")
	}
	if _, _, err := store.Get(ctx, "nope"); err == nil {
		t.Fatalf("expected get error for missing key")
	}
}

func TestStore_ListPagination(t *testing.T) {
	store := newMockStore(t)
	ctx := context.Background()
	if _, err := store.Put(ctx, "audit/7/a.jsonl", bytes.NewReader([]byte("a")), core.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Put(ctx, "audit/7/b.jsonl", bytes.NewReader([]byte("bb")), core.PutOptions{}); err != nil {
		t.Fatalf("put2: %v", err)
	}
	list, err := store.List(ctx, "audit/7/")
	if err != nil || len(list) != 2 {
		t.Fatalf("expected two batches via pagination: %v %+v", err, list)
	}
	if list[0].Key != "audit/7/a.jsonl" || list[1].Key != "audit/7/b.jsonl" {
		t.Fatalf("list order: %+v", list)
	}
	if empty, err := store.List(ctx, "no-such-prefix/"); err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list: %v %+v", err, empty)
	}
}

func TestStore_FromHeadNilBranches(t *testing.T) {
	store := newMockStore(t)
	info := store.fromHead("k", 10, nil, aws.String("\"etagval\""), map[string]string{"x": "y"}, nil)
	if info.ETag != "etagval" || info.ContentType != "" || info.Key != "k" || info.Size != 10 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestNewMockForTestsBasic(t *testing.T) {
	store := NewMockForTests()
	if store.Driver() != core.DriverS3 {
		t.Fatalf("expected DriverS3")
	}
	if _, err := store.Put(context.Background(), "audit/1/a.jsonl", bytes.NewReader([]byte("hello")), core.PutOptions{ContentType: "application/x-ndjson"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, rc, err := store.Get(context.Background(), "audit/1/a.jsonl"); err != nil {
		t.Fatalf("get: %v", err)
	} else {
		_, _ = io.ReadAll(rc)
		_ = rc.Close()
	}
	if _, err := store.Head(context.Background(), "audit/1/a.jsonl"); err != nil {
		t.Fatalf("head: %v", err)
	}
	if list, err := store.List(context.Background(), ""); err != nil || len(list) != 1 {
		t.Fatalf("list: %v %d", err, len(list))
	}
}

func TestDecodeChunkedLiteHelper(t *testing.T) {
	if _, ok := decodeChunkedLite([]byte("not-chunked")); ok {
		t.Fatalf("expected fail 1")
	}
	if _, ok := decodeChunkedLite([]byte("5\r\nabc\r\n0\r\n")); ok {
		t.Fatalf("size mismatch should fail")
	}
	if b, ok := decodeChunkedLite([]byte("5\r\nhello\r\n0\r\n")); !ok || string(b) != "hello" {
		t.Fatalf("expected decode hello")
	}
	if _, err := parseHex("zz"); err == nil {
		t.Fatalf("expected invalid hex error")
	}
}

func decodeChunked(b []byte) ([]byte, bool) {
	s := string(b)
	parts := strings.Split(s, "\r\n")
	if len(parts) < 3 {
		return nil, false
	}
	sizeHex := parts[0]
	n, err := strconv.ParseInt(sizeHex, 16, 64)
	if err != nil || n <= 0 {
		return nil, false
	}
	if int64(len(parts[1])) != n {
		return nil, false
	}
	if parts[2] != "0" {
		return nil, false
	}
	return []byte(parts[1]), true
}
