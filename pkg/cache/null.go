package cache

import (
	"context"
	"time"
)

// NullCache stores nothing, so every lookup misses and the pipeline recomputes
// each stage. It backs --no-cache and the fallback when no cache directory
// can be created.
type NullCache struct{}

// NewNullCache returns a [NullCache].
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
