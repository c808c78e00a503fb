package domain

import "sync"

// Constructor builds a fresh Domain instance. Domains are stateless enough
// that a single shared instance would normally do, but registering a
// constructor (rather than a value) keeps open the possibility of a
// parameterized domain without changing the registry's shape.
type Constructor func() Domain

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

// Register binds name to ctor so later New(name) calls construct a domain
// of this kind. Domains register themselves from an init function in
// their package, e.g. domains/pancake and domains/tsp. Register panics on
// a duplicate name — that is a programming error, not a runtime condition
// a caller can recover from.
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(ErrDuplicateDomain.Error() + ": " + name)
	}
	registry[name] = ctor
}

// New constructs the domain registered under name, or returns
// ErrUnknownDomain.
func New(name string) (Domain, error) {
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownDomain
	}
	return ctor(), nil
}

// Names returns the registered domain names, in no particular order. Used
// by the CLI harness's "domains" command to list them.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
