package cache

import "strings"

// ScopedKeyer prefixes every key of an inner keyer. The HTTP server scopes
// its keys by "api:" so that CLI and server entries sharing one Redis or
// Mongo store can be told apart.
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner (the default keyer if nil) with scope. The
// scope is inserted after [KeyPrefix] so that scoped keys stay clearable.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, scope: scope}
}

func (k *ScopedKeyer) scoped(key string) string {
	if rest, ok := strings.CutPrefix(key, KeyPrefix); ok {
		return KeyPrefix + k.scope + rest
	}
	return k.scope + key
}

// LayoutKey implements [Keyer].
func (k *ScopedKeyer) LayoutKey(groupsHash string, opts LayoutKeyOpts) string {
	return k.scoped(k.inner.LayoutKey(groupsHash, opts))
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.scoped(k.inner.ArtifactKey(layoutHash, opts))
}

// DiagramKey implements [Keyer].
func (k *ScopedKeyer) DiagramKey(id string) string {
	return k.scoped(k.inner.DiagramKey(id))
}
