package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayBoard/pkg/logger"
)

// fakeRedis хранит ключи в памяти и исполняет скрипт снятия блокировки
type fakeRedis struct {
	store     map[string]string
	setErr    error
	evalErr   error
	evalCalls int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, ok := f.store[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.store[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

// compareAndDelete повторяет unlockScript
func (f *fakeRedis) compareAndDelete(keys []string, args []interface{}) *redis.Cmd {
	f.evalCalls++
	if f.evalErr != nil {
		return redis.NewCmdResult(nil, f.evalErr)
	}
	stored, ok := f.store[keys[0]]
	if !ok {
		return redis.NewCmdResult(int64(0), nil)
	}
	if stored != args[0].(string) {
		return redis.NewCmdResult(int64(-1), nil)
	}
	delete(f.store, keys[0])
	return redis.NewCmdResult(int64(1), nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) EvalRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) EvalShaRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *fakeRedis) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "dayboard:lock:2025-10-15", DayKey(time.Date(2025, 10, 15, 13, 0, 0, 0, time.UTC)))
}

func TestRedisLocker_LockUnlock(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	l := NewRedisLocker(client, logger.NewNop())

	ok, token, err := l.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	ok, _, err = l.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second lock must not be acquired")

	assert.ErrorIs(t, l.Unlock(ctx, "k", "foreign"), ErrNotOwner)
	require.NoError(t, l.Unlock(ctx, "k", token))
	assert.Empty(t, client.store)

	// повторное снятие уже снятой блокировки не ошибка
	require.NoError(t, l.Unlock(ctx, "k", token))
}

func TestRedisLocker_Errors(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	l := NewRedisLocker(client, logger.NewNop())

	client.setErr = errors.New("connection refused")
	_, _, err := l.TryLock(ctx, "k", time.Second)
	assert.ErrorIs(t, err, ErrLockFailed)

	client.evalErr = errors.New("connection refused")
	assert.ErrorIs(t, l.Unlock(ctx, "k", "t"), ErrUnlockFailed)
}

func TestRedisLocker_UnlockKeepsLockTakenAfterExpiry(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	l := NewRedisLocker(client, logger.NewNop())

	ok, staleToken, err := l.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// ttl истек, ключ занял другой запрос
	delete(client.store, "k")
	ok, freshToken, err := l.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	assert.ErrorIs(t, l.Unlock(ctx, "k", staleToken), ErrNotOwner)
	assert.Equal(t, freshToken, client.store["k"])
	// проверка владельца и удаление - один вызов redis
	assert.Equal(t, 1, client.evalCalls)

	require.NoError(t, l.Unlock(ctx, "k", freshToken))
	assert.Empty(t, client.store)
}

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	l := NewLocalLocker()
	l.nowFn = func() time.Time { return now }

	ok, token, err := l.TryLock(ctx, "k", 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ok, _, _ = l.TryLock(ctx, "k", 10*time.Second)
	assert.False(t, ok)

	ok, _, _ = l.TryLock(ctx, "other", 10*time.Second)
	assert.True(t, ok)

	assert.ErrorIs(t, l.Unlock(ctx, "k", "foreign"), ErrNotOwner)
	require.NoError(t, l.Unlock(ctx, "k", token))

	ok, _, _ = l.TryLock(ctx, "k", 10*time.Second)
	assert.True(t, ok)

	// истекшая блокировка перехватывается
	now = now.Add(11 * time.Second)
	ok, _, _ = l.TryLock(ctx, "k", 10*time.Second)
	assert.True(t, ok)
}
