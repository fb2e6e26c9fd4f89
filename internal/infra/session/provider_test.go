package session

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_MintFormat(t *testing.T) {
	t.Parallel()

	token := New().Mint()

	parts := strings.SplitN(token, "-", 2)
	require.Len(t, parts, 2)

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), millis, float64(time.Minute.Milliseconds()))

	assert.Len(t, parts[1], randomSuffixBytes*2)
}

func TestProvider_MintUniqueness(t *testing.T) {
	t.Parallel()

	minter := New()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		token := minter.Mint()
		_, dup := seen[token]
		require.False(t, dup, "duplicate session token %s", token)
		seen[token] = struct{}{}
	}
}
