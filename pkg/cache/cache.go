// Package cache keeps decoded tModels between get calls.
//
// Entries are stored CBOR-encoded, so every Get hands out an independent
// copy and callers can mutate what they receive.
package cache

import (
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/models"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cache: cbor enc mode: %v", err))
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cache: cbor dec mode: %v", err))
	}
}

// TModels is a concurrency-safe tModel store keyed by tModelKey.
type TModels struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func New() *TModels {
	return &TModels{entries: make(map[string][]byte)}
}

// Put stores t under its key, replacing any earlier entry.
func (c *TModels) Put(t *models.TModel) error {
	key := t.Key.Value()
	if key == "" {
		return fmt.Errorf("cache put: %w: tModelKey", constants.ErrMissingField)
	}
	data, err := encMode.Marshal(t)
	if err != nil {
		return fmt.Errorf("cache put %s: %w", key, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

// Get returns a copy of the entry for key, or ErrCacheMiss.
func (c *TModels) Get(key string) (*models.TModel, error) {
	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrCacheMiss, key)
	}

	var t models.TModel
	if err := decMode.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return &t, nil
}

func (c *TModels) Delete(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

func (c *TModels) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
