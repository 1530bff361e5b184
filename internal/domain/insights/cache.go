package insights

import "context"

// Cache guarda reportes serializados por mascota. Invalidate borra todo lo de
// la mascota y se llama al registrar un check-in.
type Cache interface {
	Get(ctx context.Context, petID, key string) ([]byte, bool, error)
	Set(ctx context.Context, petID, key string, value []byte) error
	Invalidate(ctx context.Context, petID string) error
}

// NopCache se usa cuando no hay REDIS_ADDR.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, petID, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(ctx context.Context, petID, key string, value []byte) error { return nil }

func (NopCache) Invalidate(ctx context.Context, petID string) error { return nil }
