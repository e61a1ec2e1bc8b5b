package objectstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/Documental-api/internal/domain"
	"github.com/jhoicas/Documental-api/internal/domain/storage"
	"github.com/jhoicas/Documental-api/pkg/config"
)

var _ storage.BlobStore = (*MinioStore)(nil)

// MinioStore implementación del puerto BlobStore sobre MinIO (o cualquier
// storage compatible S3). El cliente es sin estado y seguro para uso
// concurrente entre requests.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore construye el adaptador de object storage. Que el bucket exista
// es precondición de arranque: si no, el servicio no puede operar y main aborta.
func NewMinioStore(ctx context.Context, cfg config.StorageConfig) (*MinioStore, error) {
	endpoint, secure, err := normalizeEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente de storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("el bucket no existe: %s", cfg.Bucket)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// normalizeEndpoint acepta "minio:9000" o "http(s)://minio:9000".
func normalizeEndpoint(raw string, useSSL bool) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("endpoint de storage vacío")
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("endpoint de storage inválido")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("el endpoint no debe incluir path")
		}
		return u.Host, u.Scheme == "https", nil
	}
	return raw, useSSL, nil
}

// Put escribe el contenido bajo key, en streaming (size -1 si se desconoce).
func (s *MinioStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (storage.ObjectInfo, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, content, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("put object %s: %w", key, err)
	}
	return storage.ObjectInfo{
		Key:         key,
		SizeBytes:   info.Size,
		ContentType: contentType,
	}, nil
}

// Get devuelve un stream del objeto. GetObject es perezoso, así que se hace
// Stat inmediato para convertir objeto-inexistente en domain.ErrNotFound antes
// de empezar a responder. El stream queda atado a ctx: cancelarlo aborta la
// lectura contra storage.
func (s *MinioStore) Get(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, storage.ObjectInfo{}, fmt.Errorf("get object %s: %w", key, err)
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil, storage.ObjectInfo{}, domain.ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("stat object %s: %w", key, err)
	}
	return obj, storage.ObjectInfo{
		Key:         key,
		SizeBytes:   stat.Size,
		ContentType: stat.ContentType,
	}, nil
}
