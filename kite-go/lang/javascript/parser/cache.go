package parser

import (
	"time"

	spooky "github.com/dgryski/go-spooky"
	lru "github.com/hashicorp/golang-lru"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
	"github.com/pkg/errors"
)

const (
	// parseCacheSize specifies the max number of parsed sources to cache
	parseCacheSize = 1000
	// staleCutoff specifies when cache entries are considered stale
	staleCutoff = 10 * time.Minute
)

var parseCache = newParseCache()

type parseEntry struct {
	ts   time.Time
	prog *ast.Program
	err  error
}

func newParseCache() *lru.Cache {
	cache, err := lru.New(parseCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}

// PurgeParseCache purges the parse cache
func PurgeParseCache() {
	parseCache.Purge()
	parseCacheEntries.Set(0)
}

// ParseSource tokenizes and parses src. The parser never runs if tokenizing fails.
// Results, including failures, are cached by the hash of src and opts.MaxDepth
// unless opts.DisableCache or opts.Trace is set; callers must not modify the
// returned program.
func ParseSource(src []byte, opts Options) (*ast.Program, error) {
	useCache := !opts.DisableCache && !opts.Trace
	if useCache {
		if entry, ok := getCachedParse(src, opts); ok {
			cacheHitRatio.Hit()
			return entry.prog, entry.err
		}
		cacheHitRatio.Miss()
	}

	prog, err := parseSource(src, opts)
	if useCache {
		cacheParse(src, opts, prog, err)
	}
	return prog, err
}

func parseSource(src []byte, opts Options) (*ast.Program, error) {
	tokens, err := scanner.Tokenize(src)
	if err != nil {
		return nil, errors.Wrap(err, "tokenize")
	}
	prog, err := Parse(tokens, opts)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return prog, nil
}

// parseKey identifies a cached parse. MaxDepth is the only option that can change
// the result.
type parseKey struct {
	hash     uint64
	maxDepth int
}

func keyFor(src []byte, opts Options) parseKey {
	return parseKey{hash: hashContents(src), maxDepth: opts.MaxDepth}
}

func getCachedParse(src []byte, opts Options) (*parseEntry, bool) {
	key := keyFor(src, opts)
	v, ok := parseCache.Get(key)
	if !ok {
		return nil, false
	}
	entry := v.(*parseEntry)
	if time.Since(entry.ts) > staleCutoff {
		parseCache.Remove(key)
		parseCacheEntries.Set(int64(parseCache.Len()))
		return nil, false
	}
	return entry, true
}

func cacheParse(src []byte, opts Options, prog *ast.Program, err error) {
	parseCache.Add(keyFor(src, opts), &parseEntry{
		ts:   time.Now(),
		prog: prog,
		err:  err,
	})
	parseCacheEntries.Set(int64(parseCache.Len()))
}

func hashContents(contents []byte) uint64 {
	return spooky.Hash64(contents)
}
