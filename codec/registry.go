package codec

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry resolves codecs by name or by container file extension, so a
// caller holding only a filename can route to the right codec. Lookups are
// case-insensitive; extension keys keep their leading dot.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Codec
	byExt  map[string]Codec
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Codec),
		byExt:  make(map[string]Codec),
	}
}

var defaultRegistry = NewRegistry()

// Register adds a codec to the default registry
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec from the default registry by name or extension
func Get(nameOrExt string) (Codec, error) {
	return defaultRegistry.Get(nameOrExt)
}

// List returns all codecs of the default registry
func List() []Codec {
	return defaultRegistry.List()
}

// Register makes a codec resolvable by its name and by its file extension.
// Registering a codec with an already-taken key replaces the older entry.
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[strings.ToLower(codec.Name())] = codec
	r.byExt[strings.ToLower(codec.Extension())] = codec
}

// Get retrieves a codec by name or file extension
func (r *Registry) Get(nameOrExt string) (Codec, error) {
	key := strings.ToLower(nameOrExt)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if codec, ok := r.byName[key]; ok {
		return codec, nil
	}
	if codec, ok := r.byExt[key]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrCodecNotFound, nameOrExt)
}

// List returns all registered codecs ordered by name
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.byName))
	for _, codec := range r.byName {
		codecs = append(codecs, codec)
	}
	sort.Slice(codecs, func(i, j int) bool {
		return codecs[i].Name() < codecs[j].Name()
	})
	return codecs
}
