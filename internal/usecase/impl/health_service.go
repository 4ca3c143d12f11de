package impl

import (
	"context"
	"log/slog"

	"agency/config"
	deliverycontext "agency/internal/delivery/context"
	"agency/internal/domain/constants"
	"agency/internal/domain/repository"
	"agency/internal/errors"
	"agency/internal/usecase"

	"go.uber.org/fx"
)

const (
	statusRunning      = "Running"
	statusSet          = "Set"
	statusNotSet       = "Not Set"
	statusConnected    = "Connected"
	statusNotConnected = "Not Connected"
	dbWorking          = "Connected & Working"
	dbNotAvailable     = "Not Available"

	maxReportedCollections = 10
	maxReportedErrorLength = 50
)

type healthService struct {
	cfg       *config.Config
	inspector repository.StoreInspector
	logger    *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	Config    *config.Config
	Inspector repository.StoreInspector `optional:"true"`
	Logger    *slog.Logger
}

// NewHealthService is the constructor for healthService.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		cfg:       params.Config,
		inspector: params.Inspector,
		logger:    params.Logger,
	}
}

func (srv *healthService) Status(_ context.Context) *usecase.StatusOutput {
	return &usecase.StatusOutput{
		Status:  "ok",
		Service: srv.cfg.Env.ServiceName,
	}
}

func (srv *healthService) Diagnose(ctx context.Context) *usecase.DiagnosticReport {
	report := &usecase.DiagnosticReport{
		Backend:          statusRunning,
		Database:         dbNotAvailable,
		DatabaseURL:      setStatus(srv.storeURLConfigured()),
		DatabaseName:     statusNotSet,
		ConnectionStatus: statusNotConnected,
		Collections:      []string{},
	}

	if srv.inspector == nil {
		return report
	}

	report.Store = srv.inspector.Backend()
	report.DatabaseName = setStatus(srv.inspector.DatabaseName() != "")
	report.ConnectionStatus = statusConnected

	collections, err := srv.inspector.ListCollections(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Store diagnostic failed",
			slog.String("backend", report.Store),
			slog.Any("error", err),
		)
		report.Database = "Connected but Error: " + errors.Truncate(err, maxReportedErrorLength)

		return report
	}

	if len(collections) > maxReportedCollections {
		collections = collections[:maxReportedCollections]
	}
	report.Collections = collections
	report.Database = dbWorking

	return report
}

// storeURLConfigured reports whether the selected backend has a server
// address to connect to. The mem driver never does, whatever store.url holds.
func (srv *healthService) storeURLConfigured() bool {
	store := srv.cfg.Store
	if store == nil {
		return false
	}

	switch store.Backend {
	case constants.StoreBackendPostgres:
		return srv.cfg.Postgres != nil && srv.cfg.Postgres.Master.Host != ""
	case "", constants.StoreBackendDocstore:
		switch store.Driver {
		case constants.DocstoreDriverMongo:
			return store.URL != ""
		case constants.DocstoreDriverFirestore:
			return store.ProjectID != ""
		}
	}

	return false
}

func setStatus(ok bool) string {
	if ok {
		return statusSet
	}

	return statusNotSet
}
