package store

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
)

// Storages aggregates every repository used by the service layer.
type Storages struct {
	UserRepository   UserRepository
	DiaryRepository  DiaryRepository
	ReportRepository ReportRepository

	db *DB
}

// NewStorages connects to PostgreSQL, migrates the schema and builds the
// repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		DiaryRepository:  NewDiaryRepository(db, log),
		ReportRepository: NewReportRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
