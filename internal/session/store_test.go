package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"spa_router_echo/internal/models"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func newGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.SessionEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStore(db)
}

func TestStoreBackends(t *testing.T) {
	redisStore, _ := newRedisStore(t)

	backends := []struct {
		name  string
		store Store
	}{
		{"memory", NewMemoryStore()},
		{"redis", redisStore},
		{"gorm", newGormStore(t)},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			key := Key("8f14e45f-ceea-467a-9af0-23a6f2b1c1d0")

			if _, err := b.store.Get(ctx, key); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}

			if err := b.store.Set(ctx, key, "true"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			// second Set on the same key overwrites
			if err := b.store.Set(ctx, key, "false"); err != nil {
				t.Fatalf("Set(overwrite) error = %v", err)
			}
			got, err := b.store.Get(ctx, key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != "false" {
				t.Errorf("Get() = %q, want %q", got, "false")
			}

			if err := b.store.Delete(ctx, key); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := b.store.Get(ctx, key); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(after delete) error = %v, want ErrNotFound", err)
			}
			if err := b.store.Delete(ctx, key); err != nil {
				t.Errorf("Delete(missing) error = %v", err)
			}
		})
	}
}

func TestManagerOverBackends(t *testing.T) {
	redisStore, _ := newRedisStore(t)

	for name, store := range map[string]Store{"redis": redisStore, "gorm": newGormStore(t)} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m := NewManager(store)
			const id = "c9f0f895-fb98-4b91-96b1-5c1b4f2a6d11"

			if state, err := m.Load(ctx, id); err != nil || state.Authenticated {
				t.Fatalf("Load(fresh) = %+v, %v; want unauthenticated", state, err)
			}
			if _, err := m.Login(ctx, id, Credentials{Username: "alice", Password: "secret"}); err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if state, err := m.Load(ctx, id); err != nil || !state.Authenticated {
				t.Fatalf("Load(after login) = %+v, %v; want authenticated", state, err)
			}
			if _, err := m.Logout(ctx, id); err != nil {
				t.Fatalf("Logout() error = %v", err)
			}
			if state, err := m.Load(ctx, id); err != nil || state.Authenticated {
				t.Errorf("Load(after logout) = %+v, %v; want unauthenticated", state, err)
			}
		})
	}
}

func TestRedisStoreEntriesDoNotExpire(t *testing.T) {
	store, mr := newRedisStore(t)
	key := Key("45c48cce-2e2d-4fbd-8a5b-4ee2f5d0c1aa")

	if err := store.Set(context.Background(), key, "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := mr.TTL(key); got != 0 {
		t.Errorf("TTL = %v, want no expiry", got)
	}
	if got, err := mr.Get(key); err != nil || got != "true" {
		t.Errorf("stored value = %q, %v; want %q", got, err, "true")
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), Key("abc"))
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want a connection error", err)
	}

	_, err = NewManager(store).Load(context.Background(), "abc")
	if err == nil {
		t.Fatal("Load() error = nil, want wrapped store error")
	}
}
