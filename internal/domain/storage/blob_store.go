package storage

import (
	"context"
	"io"
)

// ObjectInfo metadatos mínimos de un objeto almacenado.
type ObjectInfo struct {
	Key         string
	SizeBytes   int64
	ContentType string
}

// BlobStore define el puerto hacia el object storage donde viven los bytes de
// los documentos. La implementación (MinIO) vive en infrastructure.
// Las operaciones reciben context para que una desconexión del cliente cancele
// la lectura/escritura subyacente.
type BlobStore interface {
	// Put escribe el contenido bajo key y devuelve la ubicación almacenada.
	// size = -1 si se desconoce (streaming puro).
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (ObjectInfo, error)
	// Get devuelve un stream de los bytes del objeto. Retorna domain.ErrNotFound
	// si el objeto no existe. El caller debe cerrar el reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}
