package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Documental-api/internal/domain/repository"
)

var _ repository.DiagnosticsRepository = (*DiagnosticsRepo)(nil)

// DiagnosticsRepo consultas de diagnóstico sobre PostgreSQL.
type DiagnosticsRepo struct {
	pool *pgxpool.Pool
}

// NewDiagnosticsRepository construye el adaptador de diagnóstico.
func NewDiagnosticsRepository(pool *pgxpool.Pool) *DiagnosticsRepo {
	return &DiagnosticsRepo{pool: pool}
}

// ServerTime devuelve la hora actual del servidor de base de datos.
// Sirve de sondeo de conectividad para GET /db.
func (r *DiagnosticsRepo) ServerTime() (time.Time, error) {
	var now time.Time
	if err := r.pool.QueryRow(context.Background(), `SELECT now()`).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("select now: %w", err)
	}
	return now, nil
}

// TableCounts devuelve el número de filas por tabla del dominio. Reemplaza al
// volcado completo de tablas: da visibilidad de operador sin exponer contenido.
func (r *DiagnosticsRepo) TableCounts() (map[string]int64, error) {
	counts := make(map[string]int64, 4)
	for _, table := range []string{"companies", "users", "productions", "documents"} {
		var n int64
		// Nombres de tabla fijos del slice anterior, no entrada de usuario.
		query := fmt.Sprintf(`SELECT count(*) FROM %s`, table)
		if err := r.pool.QueryRow(context.Background(), query).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
