package locker

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestLocker(t *testing.T) (*RedisLocker, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	l := NewRedisLocker(client, "gym", time.Second, 50*time.Millisecond, nopLogger{})
	l.newToken = func() string { return "token-1" }
	l.retryDelay = 10 * time.Millisecond
	return l, mock
}

func TestLock_SortedAndReleased(t *testing.T) {
	l, mock := newTestLocker(t)

	mock.ExpectSetNX("gym:room:4", "token-1", time.Second).SetVal(true)
	mock.ExpectSetNX("gym:trainer:2", "token-1", time.Second).SetVal(true)
	mock.ExpectEvalSha(releaseScript.Hash(), []string{"gym:trainer:2"}, "token-1").SetVal(int64(1))
	mock.ExpectEvalSha(releaseScript.Hash(), []string{"gym:room:4"}, "token-1").SetVal(int64(1))

	unlock, err := l.Lock(context.Background(), "trainer:2", "room:4", "trainer:2")
	require.NoError(t, err)
	unlock()

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLock_HeldByOtherRequest(t *testing.T) {
	l, mock := newTestLocker(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectSetNX("gym:member:1", "token-1", time.Second).SetVal(true)
	for i := 0; i < 10; i++ {
		mock.ExpectSetNX("gym:trainer:2", "token-1", time.Second).SetVal(false)
	}
	mock.ExpectEvalSha(releaseScript.Hash(), []string{"gym:member:1"}, "token-1").SetVal(int64(1))

	_, err := l.Lock(context.Background(), "trainer:2", "member:1")
	assert.ErrorIs(t, err, ErrLockNotAcquired)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, normalize([]string{"b", "a", "b"}))
	assert.Empty(t, normalize(nil))
}

func TestNoopLocker(t *testing.T) {
	unlock, err := NoopLocker{}.Lock(context.Background(), "trainer:1")
	require.NoError(t, err)
	assert.NotPanics(t, assert.PanicTestFunc(unlock))
}
