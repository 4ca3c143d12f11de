package usecase

import "context"

// StatusOutput is the service banner returned by the root endpoint.
type StatusOutput struct {
	Status  string
	Service string
}

// DiagnosticReport summarizes backend and store reachability.
type DiagnosticReport struct {
	Backend          string
	Store            string // driver actually serving requests, e.g. "docstore/mem"
	Database         string
	DatabaseURL      string
	DatabaseName     string
	ConnectionStatus string
	Collections      []string
}

// HealthUsecase reports liveness and store diagnostics.
type HealthUsecase interface {
	Status(ctx context.Context) *StatusOutput

	// Diagnose never fails; store problems are reported inside the report.
	Diagnose(ctx context.Context) *DiagnosticReport
}
