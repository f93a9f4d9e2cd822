package service

import (
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	DiaryService   DiaryService
	ReportService  ReportService
	AppInfoService AppInfoService
}

// Adapters groups the outbound clients used by the report pipeline.
type Adapters struct {
	Generator adapter.TextGenerator
	Searcher  adapter.WebSearcher
}

func NewServices(storages *store.Storages, adapters Adapters, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	loc, err := cfg.Report.Location()
	if err != nil {
		return nil, fmt.Errorf("report time zone: %w", err)
	}

	reportService := NewReportService(
		storages.UserRepository,
		storages.DiaryRepository,
		storages.ReportRepository,
		adapters.Generator,
		adapters.Searcher,
		ReportOptions{Location: loc, MaxRecommendations: cfg.Adapter.Search.MaxResults},
		logger,
	)

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		DiaryService:   NewDiaryValidationService().Wrap(NewDiaryService(storages.DiaryRepository, logger)),
		ReportService:  NewReportValidationService(loc).Wrap(reportService),
		AppInfoService: appInfoService,
	}, nil
}
