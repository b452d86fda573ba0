package capability

// SupportsDelAttr is implemented by values that can delete a named attribute.
type SupportsDelAttr interface {
	DelAttr(name string) error
}

// SupportsSetAttr is implemented by values that can assign a named attribute.
type SupportsSetAttr[V any] interface {
	SetAttr(name string, value V) error
}

// SupportsGetAttr is implemented by values that can look up a named
// attribute, failing when it cannot be resolved.
type SupportsGetAttr[V any] interface {
	GetAttr(name string) (V, error)
}

// SupportsGetAttribute is implemented by values that expose a primary
// attribute lookup reporting presence with a boolean.
type SupportsGetAttribute[V any] interface {
	GetAttribute(name string) (V, bool)
}

// SupportsDelItem is implemented by values that can delete a keyed item.
type SupportsDelItem[K any] interface {
	DelItem(key K) error
}

// SupportsSetItem is implemented by values that can assign a keyed item.
type SupportsSetItem[K, V any] interface {
	SetItem(key K, value V) error
}

// SupportsGetItem is implemented by values that can look up a keyed item.
type SupportsGetItem[K, V any] interface {
	GetItem(key K) (V, error)
}

// SupportsDir is implemented by values that can list their attribute names.
type SupportsDir interface {
	Dir() []string
}

// Exitable is implemented by scopes that can be left early.
// Exit returns the signal that, once returned from the scope's block,
// unwinds to the scope.
type Exitable interface {
	Exit() error
}

// Implements reports whether v satisfies the capability C.
// C must be an interface type.
func Implements[C any](v any) bool {
	_, ok := v.(C)
	return ok
}
