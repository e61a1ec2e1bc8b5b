package entity

import "time"

// Document es el registro de metadatos de un archivo: apunta vía BlobKey al
// objeto en storage. Pertenece a una Production y, transitivamente, a una Company.
// Version es una etiqueta libre, no un grafo de revisiones: no hay unicidad
// sobre (production_id, version).
type Document struct {
	ID           string
	ProductionID string
	FileName     string
	BlobKey      string
	Version      string
	SizeBytes    int64
	ContentType  string
	CreatedAt    time.Time
}

// DocumentWithContext es la vista desnormalizada para listados:
// documento + nombres de producción y empresa (join documents→productions→companies).
type DocumentWithContext struct {
	Document
	ProductionName string
	CompanyName    string
}
