package credstore

import "context"

// Batcher is implemented by stores that can write several keys atomically.
type Batcher interface {
	SaveAll(ctx context.Context, values map[string]string)
	ClearAll(ctx context.Context, keys ...string)
}

// SaveAll writes values through s, atomically when s is a Batcher.
func SaveAll(ctx context.Context, s Store, values map[string]string) {
	if b, ok := s.(Batcher); ok {
		b.SaveAll(ctx, values)
		return
	}
	for k, v := range values {
		s.Save(ctx, k, v)
	}
}

// ClearAll removes keys through s, atomically when s is a Batcher.
func ClearAll(ctx context.Context, s Store, keys ...string) {
	if b, ok := s.(Batcher); ok {
		b.ClearAll(ctx, keys...)
		return
	}
	for _, k := range keys {
		s.Clear(ctx, k)
	}
}
