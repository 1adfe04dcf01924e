package bootstrap

import (
	"context"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"

	appconfig "github.com/andestack/contactline/internal/config"
	"github.com/andestack/contactline/internal/record"
	"github.com/andestack/contactline/pkg/logging"
)

func TestBuildRedisClientNilConfigReturnsNil(t *testing.T) {
	if client := BuildRedisClient(context.Background(), nil, logging.New("error"), false); client != nil {
		t.Fatalf("expected nil client for nil config")
	}
}

func TestBuildRedisClientEmptyAddrReturnsNil(t *testing.T) {
	cfg := &appconfig.Config{RedisAddr: "   "}

	if client := BuildRedisClient(context.Background(), cfg, logging.New("error"), false); client != nil {
		t.Fatalf("expected nil client for blank address")
	}
}

func TestBuildRedisClientVerifyPingFailureReturnsNil(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &appconfig.Config{RedisAddr: mr.Addr()}
	mr.Close()

	if client := BuildRedisClient(context.Background(), cfg, logging.New("error"), true); client != nil {
		t.Fatalf("expected nil client when ping fails")
	}
}

func TestBuildRedisClientVerifySuccess(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &appconfig.Config{RedisAddr: mr.Addr()}

	client := BuildRedisClient(context.Background(), cfg, logging.New("error"), true)
	if client == nil {
		t.Fatalf("expected client for reachable redis")
	}
	defer client.Close()
}

func TestBuildPostgresPoolEmptyURLReturnsNil(t *testing.T) {
	cfg := &appconfig.Config{DatabaseURL: "  "}

	if pool := BuildPostgresPool(context.Background(), cfg, logging.New("error")); pool != nil {
		t.Fatalf("expected nil pool for blank URL")
	}
}

func TestBuildPostgresPoolBadURLReturnsNil(t *testing.T) {
	cfg := &appconfig.Config{DatabaseURL: "://not-a-url"}

	if pool := BuildPostgresPool(context.Background(), cfg, logging.New("error")); pool != nil {
		t.Fatalf("expected nil pool for malformed URL")
	}
}

func TestBuildRecordStoreMemory(t *testing.T) {
	cfg := &appconfig.Config{UseMemoryStore: true}

	store := BuildRecordStore(nil, nil, cfg, logging.New("error"))
	if _, ok := store.(*record.MemoryStore); !ok {
		t.Fatalf("expected MemoryStore, got %T", store)
	}
}

func TestBuildRecordStoreNoBackendReturnsNil(t *testing.T) {
	cfg := &appconfig.Config{}

	if store := BuildRecordStore(nil, nil, cfg, logging.New("error")); store != nil {
		t.Fatalf("expected nil store without redis, got %T", store)
	}
}

func TestBuildRecordStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &appconfig.Config{RedisAddr: mr.Addr()}

	client := BuildRedisClient(context.Background(), cfg, logging.New("error"), true)
	if client == nil {
		t.Fatalf("expected redis client")
	}
	defer client.Close()

	store := BuildRecordStore(client, nil, cfg, logging.New("error"))
	if _, ok := store.(*record.RedisStore); !ok {
		t.Fatalf("expected RedisStore, got %T", store)
	}
}

func TestParseAllowedOrigins(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "https://a.example", []string{"https://a.example"}},
		{"list with spaces", " https://a.example , https://b.example ", []string{"https://a.example", "https://b.example"}},
		{"drops blanks", "https://a.example,,https://b.example,", []string{"https://a.example", "https://b.example"}},
		{"wildcard", "*", []string{"*"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAllowedOrigins(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseAllowedOrigins(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
