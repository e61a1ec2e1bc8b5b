package document_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documental-api/internal/application/document"
	"github.com/jhoicas/Documental-api/internal/domain"
	"github.com/jhoicas/Documental-api/internal/domain/entity"
	"github.com/jhoicas/Documental-api/internal/domain/storage"
	"github.com/jhoicas/Documental-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el catálogo y el blob store
// ──────────────────────────────────────────────────────────────────────────────

// fakeCatalog implementa ProductionRepository y DocumentRepository sobre mapas,
// reproduciendo el scoping por company del catálogo real.
type fakeCatalog struct {
	mu          sync.Mutex
	companies   map[string]string // id -> name
	productions map[string]*entity.Production
	documents   map[string]*entity.Document
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		companies:   map[string]string{},
		productions: map[string]*entity.Production{},
		documents:   map[string]*entity.Document{},
	}
}

func (f *fakeCatalog) addCompany(id, name string) {
	f.companies[id] = name
}

func (f *fakeCatalog) CreateProduction(p *entity.Production) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productions[p.ID] = p
	return nil
}

func (f *fakeCatalog) GetByIDAndCompany(id, companyID string) (*entity.Production, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.productions[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}

func (f *fakeCatalog) ListByCompany(companyID string) ([]*entity.Production, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Production
	for _, p := range f.productions {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

// docRepo adapta fakeCatalog al puerto DocumentRepository.
type docRepo struct{ cat *fakeCatalog }

func (r docRepo) Create(d *entity.Document) error {
	r.cat.mu.Lock()
	defer r.cat.mu.Unlock()
	if _, ok := r.cat.documents[d.ID]; ok {
		return fmt.Errorf("id duplicado: %s", d.ID)
	}
	r.cat.documents[d.ID] = d
	return nil
}

func (r docRepo) GetByIDAndCompany(id, companyID string) (*entity.Document, error) {
	r.cat.mu.Lock()
	defer r.cat.mu.Unlock()
	d, ok := r.cat.documents[id]
	if !ok {
		return nil, nil
	}
	p, ok := r.cat.productions[d.ProductionID]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return d, nil
}

func (r docRepo) ListByCompany(companyID string) ([]*entity.DocumentWithContext, error) {
	r.cat.mu.Lock()
	defer r.cat.mu.Unlock()
	var out []*entity.DocumentWithContext
	for _, d := range r.cat.documents {
		p, ok := r.cat.productions[d.ProductionID]
		if !ok || p.CompanyID != companyID {
			continue
		}
		out = append(out, &entity.DocumentWithContext{
			Document:       *d,
			ProductionName: p.Name,
			CompanyName:    r.cat.companies[p.CompanyID],
		})
	}
	return out, nil
}

// prodRepo adapta fakeCatalog al puerto ProductionRepository.
type prodRepo struct{ cat *fakeCatalog }

func (r prodRepo) Create(p *entity.Production) error { return r.cat.CreateProduction(p) }
func (r prodRepo) GetByIDAndCompany(id, companyID string) (*entity.Production, error) {
	return r.cat.GetByIDAndCompany(id, companyID)
}
func (r prodRepo) ListByCompany(companyID string) ([]*entity.Production, error) {
	return r.cat.ListByCompany(companyID)
}

// fakeBlobStore guarda los objetos en un mapa, con los bytes leídos completos.
type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
	gets    int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (s *fakeBlobStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (storage.ObjectInfo, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return storage.ObjectInfo{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	s.puts++
	return storage.ObjectInfo{Key: key, SizeBytes: int64(len(data)), ContentType: contentType}, nil
}

func (s *fakeBlobStore) Get(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ObjectInfo{}, domain.ErrNotFound
	}
	s.gets++
	return io.NopCloser(bytes.NewReader(data)), storage.ObjectInfo{Key: key, SizeBytes: int64(len(data))}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "00000000-0000-0000-0000-00000000000a"
	companyB = "00000000-0000-0000-0000-00000000000b"
	prodA    = "00000000-0000-0000-0000-0000000000a1"
	prodB    = "00000000-0000-0000-0000-0000000000b1"
)

func buildUseCase(t *testing.T) (*document.DocumentUseCase, *fakeCatalog, *fakeBlobStore) {
	t.Helper()
	cat := newFakeCatalog()
	cat.addCompany(companyA, "Acme Films")
	cat.addCompany(companyB, "Otra Productora")
	require.NoError(t, cat.CreateProduction(&entity.Production{ID: prodA, CompanyID: companyA, Name: "Campaña 2026"}))
	require.NoError(t, cat.CreateProduction(&entity.Production{ID: prodB, CompanyID: companyB, Name: "Serie B"}))

	blobs := newFakeBlobStore()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := document.NewDocumentUseCase(docRepo{cat}, prodRepo{cat}, blobs, log)
	return uc, cat, blobs
}

func upload(t *testing.T, uc *document.DocumentUseCase, companyID, productionID, fileName, version string, content []byte) string {
	t.Helper()
	out, err := uc.Upload(context.Background(), companyID, document.UploadInput{
		ProductionID: productionID,
		Version:      version,
		FileName:     fileName,
		ContentType:  "application/pdf",
		Content:      bytes.NewReader(content),
		Size:         int64(len(content)),
	})
	require.NoError(t, err)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Round-trip: subir y descargar devuelve bytes idénticos y el nombre original.
func TestUploadDownload_RoundTrip(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	content := []byte("contenido binario del informe %PDF-1.4 \x00\x01\x02")

	id := upload(t, uc, companyA, prodA, "report.pdf", "v1", content)

	res, err := uc.Download(context.Background(), companyA, id)
	require.NoError(t, err)
	defer res.Content.Close()

	got, err := io.ReadAll(res.Content)
	require.NoError(t, err)
	assert.Equal(t, content, got, "los bytes descargados deben ser idénticos a los subidos")
	assert.Equal(t, "report.pdf", res.FileName)
	assert.Equal(t, int64(len(content)), res.SizeBytes)
}

// La clave del blob sigue el formato uploads/{ms}_{nombre} y queda registrada
// en los metadatos.
func TestUpload_ClaveDelBlob(t *testing.T) {
	uc, cat, blobs := buildUseCase(t)
	id := upload(t, uc, companyA, prodA, "report.pdf", "v1", []byte("x"))

	doc := cat.documents[id]
	require.NotNil(t, doc)
	assert.Regexp(t, `^uploads/\d+_report\.pdf$`, doc.BlobKey)
	_, ok := blobs.objects[doc.BlobKey]
	assert.True(t, ok, "el blob_key de los metadatos debe referenciar un objeto existente")
}

// Subir a una producción de otra empresa se lee como no-encontrado y no
// escribe nada en storage.
func TestUpload_ProduccionDeOtroTenant(t *testing.T) {
	uc, _, blobs := buildUseCase(t)
	_, err := uc.Upload(context.Background(), companyA, document.UploadInput{
		ProductionID: prodB,
		FileName:     "report.pdf",
		Content:      bytes.NewReader([]byte("x")),
		Size:         1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, blobs.puts, "no debe tocarse el storage si la producción no es del tenant")
}

// Descargar un id inexistente es NotFound, nunca un error genérico.
func TestDownload_IdInexistente(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	_, err := uc.Download(context.Background(), companyA, "00000000-0000-0000-0000-0000000999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un id válido de otro tenant responde igual que uno inexistente.
func TestDownload_CrossTenant_EsNotFound(t *testing.T) {
	uc, _, blobs := buildUseCase(t)
	id := upload(t, uc, companyA, prodA, "secreto.pdf", "v1", []byte("confidencial"))

	gets := blobs.gets
	_, err := uc.Download(context.Background(), companyB, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, gets, blobs.gets, "no debe leerse el blob de otro tenant")
}

// El listado de una empresa nunca incluye documentos de otra.
func TestList_AislamientoDeTenants(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	upload(t, uc, companyA, prodA, "a1.pdf", "v1", []byte("a1"))
	upload(t, uc, companyA, prodA, "a2.pdf", "v1", []byte("a2"))
	upload(t, uc, companyB, prodB, "b1.pdf", "v1", []byte("b1"))

	listA, err := uc.List(companyA)
	require.NoError(t, err)
	require.Len(t, listA, 2)
	for _, d := range listA {
		assert.Equal(t, "Acme Films", d.CompanyName)
		assert.Equal(t, prodA, d.ProductionID)
	}

	listB, err := uc.List(companyB)
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, "b1.pdf", listB[0].FileName)
}

// Subidas concurrentes con la misma etiqueta de versión producen filas
// independientes: no hay unicidad sobre (production_id, version).
func TestUpload_ConcurrentesMismaVersion(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	const n = 8
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content := []byte(fmt.Sprintf("contenido-%d", i))
			out, err := uc.Upload(context.Background(), companyA, document.UploadInput{
				ProductionID: prodA,
				Version:      "v1",
				FileName:     fmt.Sprintf("archivo-%d.pdf", i),
				Content:      bytes.NewReader(content),
				Size:         int64(len(content)),
			})
			assert.NoError(t, err)
			if out != nil {
				ids[i] = out.ID
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "cada subida debe producir un id distinto")
		seen[id] = true
	}

	list, err := uc.List(companyA)
	require.NoError(t, err)
	assert.Len(t, list, n)
}

// El nombre de archivo se normaliza: un path malicioso no viaja a la clave.
func TestUpload_NombreConPath(t *testing.T) {
	uc, cat, _ := buildUseCase(t)
	id := upload(t, uc, companyA, prodA, "../../etc/passwd", "v1", []byte("x"))

	doc := cat.documents[id]
	require.NotNil(t, doc)
	assert.Equal(t, "passwd", doc.FileName)
	assert.NotContains(t, doc.BlobKey, "..")
}
