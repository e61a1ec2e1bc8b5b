package repository

import "time"

// DiagnosticsRepository expone las consultas de diagnóstico del servicio:
// sondeo de la DB (GET /db) y conteos por tabla para la superficie de operador
// (GET /status, solo admin). No expone contenido de filas.
type DiagnosticsRepository interface {
	ServerTime() (time.Time, error)
	TableCounts() (map[string]int64, error)
}
