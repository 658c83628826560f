package pairtable

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestRollingHash(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		capacity int
		want     int
	}{
		{name: "Empty key", key: "", capacity: 5, want: 0},
		{name: "Single symbol", key: "a", capacity: 5, want: 2},
		{name: "Next symbol", key: "b", capacity: 5, want: 3},
		{name: "Multiple symbols", key: "abc", capacity: 13, want: 12},
		{name: "Mid capacity", key: "hello", capacity: 97, want: 67},
		{name: "Dashed key", key: "key-42", capacity: 29, want: 26},
		{name: "Non-ASCII rune", key: "héllo", capacity: 1572869, want: 1330729},
		{name: "Capacity two", key: "x", capacity: 2, want: 0},
		{name: "Capacity one", key: "anything", capacity: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RollingHash(tt.key, tt.capacity))
		})
	}
}

func TestRollingHash_DependsOnCapacity(t *testing.T) {
	// The same key lands on different slots once the table grows.
	require.Equal(t, 2, RollingHash("a", 5))
	require.Equal(t, 6, RollingHash("a", 13))
}

func TestRollingHash_InRange(t *testing.T) {
	for _, capacity := range DefaultSizes {
		for _, key := range []string{"", "a", "zz", "some longer key", "ключ"} {
			h := RollingHash(key, capacity)
			require.GreaterOrEqual(t, h, 0)
			require.Less(t, h, capacity)
		}
	}
}

func TestXXHash64(t *testing.T) {
	v := "foo"

	require.Equal(t, int(xxhash.Sum64String(v)%97), XXHash64(v, 97))
	require.Equal(t, 0, XXHash64(v, 1))
}

func TestXXH3(t *testing.T) {
	v := "foo"

	require.Equal(t, int(xxh3.HashString(v)%97), XXH3(v, 97))
	require.Equal(t, 0, XXH3(v, 1))
}
