package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"agency/config"
	mockRepo "agency/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHealthConfig() *config.Config {
	cfg := &config.Config{Store: &config.StoreConfig{Backend: "docstore", Driver: "mongo"}}
	cfg.Env.ServiceName = "Video Editing Agency API"

	return cfg
}

func TestHealthService_Status(t *testing.T) {
	srv := NewHealthService(HealthServiceParams{Config: newHealthConfig(), Logger: newDiscardLogger()})

	out := srv.Status(context.Background())
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "Video Editing Agency API", out.Service)
}

func TestHealthService_Diagnose_Working(t *testing.T) {
	cfg := newHealthConfig()
	cfg.Store.URL = "mongodb://db:27017"
	inspector := mockRepo.NewMockStoreInspector(t)

	collections := make([]string, 12)
	for i := range collections {
		collections[i] = fmt.Sprintf("coll%d", i)
	}
	inspector.EXPECT().Backend().Return("docstore/mongo")
	inspector.EXPECT().DatabaseName().Return("agency")
	inspector.EXPECT().ListCollections(mock.Anything).Return(collections, nil)

	srv := NewHealthService(HealthServiceParams{Config: cfg, Inspector: inspector, Logger: newDiscardLogger()})
	report := srv.Diagnose(context.Background())

	assert.Equal(t, "Running", report.Backend)
	assert.Equal(t, "docstore/mongo", report.Store)
	assert.Equal(t, "Connected & Working", report.Database)
	assert.Equal(t, "Set", report.DatabaseURL)
	assert.Equal(t, "Set", report.DatabaseName)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Equal(t, collections[:10], report.Collections)
}

func TestHealthService_Diagnose_StoreError(t *testing.T) {
	inspector := mockRepo.NewMockStoreInspector(t)
	inspector.EXPECT().DatabaseName().Return("")
	inspector.EXPECT().Backend().Return("docstore/mongo")
	inspector.EXPECT().ListCollections(mock.Anything).
		Return(nil, errors.New(strings.Repeat("x", 80)))

	srv := NewHealthService(HealthServiceParams{Config: newHealthConfig(), Inspector: inspector, Logger: newDiscardLogger()})
	report := srv.Diagnose(context.Background())

	assert.Equal(t, "Connected but Error: "+strings.Repeat("x", 50), report.Database)
	assert.Equal(t, "Not Set", report.DatabaseURL)
	assert.Equal(t, "Not Set", report.DatabaseName)
	assert.Empty(t, report.Collections)
}

func TestHealthService_Diagnose_NoInspector(t *testing.T) {
	srv := NewHealthService(HealthServiceParams{Config: newHealthConfig(), Logger: newDiscardLogger()})
	report := srv.Diagnose(context.Background())

	assert.Equal(t, "Not Available", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.NotNil(t, report.Collections)
}

func TestHealthService_Diagnose_MemStoreIgnoresURL(t *testing.T) {
	cfg := newHealthConfig()
	cfg.Store.Driver = "mem"
	cfg.Store.URL = "mongodb://db:27017"
	inspector := mockRepo.NewMockStoreInspector(t)
	inspector.EXPECT().Backend().Return("docstore/mem")
	inspector.EXPECT().DatabaseName().Return("agency")
	inspector.EXPECT().ListCollections(mock.Anything).Return([]string{"agencyuser", "contactmessage"}, nil)

	srv := NewHealthService(HealthServiceParams{Config: cfg, Inspector: inspector, Logger: newDiscardLogger()})
	report := srv.Diagnose(context.Background())

	assert.Equal(t, "docstore/mem", report.Store)
	assert.Equal(t, "Not Set", report.DatabaseURL)
}

func TestHealthService_StoreURLConfigured(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		want   bool
	}{
		{
			name:   "mongo with url",
			mutate: func(cfg *config.Config) { cfg.Store.URL = "mongodb://db:27017" },
			want:   true,
		},
		{
			name:   "mongo without url",
			mutate: func(*config.Config) {},
			want:   false,
		},
		{
			name: "mem with url",
			mutate: func(cfg *config.Config) {
				cfg.Store.Driver = "mem"
				cfg.Store.URL = "mongodb://db:27017"
			},
			want: false,
		},
		{
			name: "firestore with project",
			mutate: func(cfg *config.Config) {
				cfg.Store.Driver = "firestore"
				cfg.Store.ProjectID = "agency-prod"
			},
			want: true,
		},
		{
			name:   "postgres without section",
			mutate: func(cfg *config.Config) { cfg.Store.Backend = "postgres" },
			want:   false,
		},
		{
			name: "postgres section without host",
			mutate: func(cfg *config.Config) {
				cfg.Store.Backend = "postgres"
				cfg.Postgres = &postgres.DBConn{Database: "agency"}
			},
			want: false,
		},
		{
			name: "postgres with host",
			mutate: func(cfg *config.Config) {
				cfg.Store.Backend = "postgres"
				cfg.Postgres = &postgres.DBConn{Database: "agency"}
				cfg.Postgres.Master.Host = "db"
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newHealthConfig()
			tt.mutate(cfg)
			srv := NewHealthService(HealthServiceParams{Config: cfg, Logger: newDiscardLogger()}).(*healthService)

			assert.Equal(t, tt.want, srv.storeURLConfigured())
		})
	}
}
