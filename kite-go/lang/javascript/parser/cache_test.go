package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCache(t *testing.T) {
	// make sure cache is empty on start
	PurgeParseCache()
	assert.Equal(t, 0, parseCache.Len(), "parse cache should be empty on start")

	contents := []byte("foo(1)")
	entry, ok := getCachedParse(contents, DefaultOptions)
	assert.False(t, ok, "contents should not exist")
	assert.Nil(t, entry, "contents should not exist")

	// add ten entries
	for i := 0; i < 10; i++ {
		ParseSource([]byte(fmt.Sprintf("foo(%d)", i)), DefaultOptions)
	}
	assert.Equal(t, 10, parseCache.Len(), "parse cache should have ten entries.")

	// parsing the same sources should not result in more items in the cache
	for i := 0; i < 10; i++ {
		ParseSource([]byte(fmt.Sprintf("foo(%d)", i)), DefaultOptions)
	}
	assert.Equal(t, 10, parseCache.Len(), "parse cache should have ten entries.")
	assert.EqualValues(t, 10, parseCacheEntries.GetValue())

	PurgeParseCache()
	assert.Equal(t, 0, parseCache.Len(), "parse cache should be empty after purge")
	assert.EqualValues(t, 0, parseCacheEntries.GetValue())
}

func TestParseSource_Cached(t *testing.T) {
	PurgeParseCache()
	src := []byte("a + b")

	first, err := ParseSource(src, DefaultOptions)
	require.NoError(t, err)
	second, err := ParseSource(src, DefaultOptions)
	require.NoError(t, err)
	assert.True(t, first == second, "second parse should come from the cache")

	opts := DefaultOptions
	opts.DisableCache = true
	third, err := ParseSource(src, opts)
	require.NoError(t, err)
	assert.False(t, first == third, "cache should be bypassed")
	assert.Equal(t, first, third)
}

func TestParseSource_Errors(t *testing.T) {
	PurgeParseCache()

	_, err := ParseSource([]byte(`"Foo`), DefaultOptions)
	require.Error(t, err)
	kind, ok := scanner.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, scanner.UnterminatedStringLiteral, kind)
	_, ok = KindOf(err)
	assert.False(t, ok)

	// failures are cached too
	_, cached := getCachedParse([]byte(`"Foo`), DefaultOptions)
	assert.True(t, cached)

	_, err = ParseSource([]byte("{ { 123 }"), DefaultOptions)
	require.Error(t, err)
	pkind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, UnexpectedEndOfInput, pkind)
}

func Test_StaleCacheEntries(t *testing.T) {
	PurgeParseCache()

	contents := []byte("a")
	parseCache.Add(keyFor(contents, DefaultOptions), &parseEntry{
		ts: time.Now().Add(-2 * staleCutoff),
	})
	assert.Equal(t, 1, parseCache.Len(), "parse cache should have one entry")

	_, ok := getCachedParse(contents, DefaultOptions)
	assert.False(t, ok, "stale entry should not be returned")
	assert.Equal(t, 0, parseCache.Len(), "stale entry should be removed")
}

func TestParseSource_CachedPerMaxDepth(t *testing.T) {
	PurgeParseCache()
	src := []byte("{ { a } }")

	_, err := ParseSource(src, Options{MaxDepth: 1})
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, UnexpectedToken, kind)

	prog, err := ParseSource(src, DefaultOptions)
	require.NoError(t, err)
	require.NotNil(t, prog)
	assert.Equal(t, 2, parseCache.Len())

	// the failure is still cached for the shallower limit
	_, err = ParseSource(src, Options{MaxDepth: 1})
	assert.Error(t, err)
	assert.Equal(t, 2, parseCache.Len())
}
