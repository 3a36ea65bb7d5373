package kv

import "context"

// Store es un almacén clave/valor de strings, el equivalente durable del
// localStorage del dispositivo. Las implementaciones viven en adapters/storage.
type Store interface {
	// Get devuelve ok=false si la key no existe.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// SetMany escribe todas las keys o ninguna.
	SetMany(ctx context.Context, values map[string]string) error
	Close() error
}
