package dto

import "time"

// UploadResponse confirmación de subida: id del documento y ubicación del blob.
type UploadResponse struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

// DocumentResponse salida de un documento en listados, con contexto
// desnormalizado (nombres de producción y empresa).
type DocumentResponse struct {
	ID             string    `json:"id"`
	ProductionID   string    `json:"production_id"`
	ProductionName string    `json:"production_name"`
	CompanyName    string    `json:"company_name"`
	FileName       string    `json:"file_name"`
	Version        string    `json:"version"`
	SizeBytes      int64     `json:"size_bytes"`
	ContentType    string    `json:"content_type"`
	CreatedAt      time.Time `json:"created_at"`
}
