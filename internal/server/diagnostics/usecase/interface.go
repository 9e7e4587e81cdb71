package usecase

import (
	"context"

	"github.com/Alwanly/vendor-portal-diagnostics/pkg/wrapper"
)

// UseCaseInterface defines the diagnostics operations exposed over HTTP
type UseCaseInterface interface {
	// ConfigSnapshot reports the allow-listed configuration variables
	ConfigSnapshot(ctx context.Context) wrapper.JSONResult
	// Health reports service liveness
	Health(ctx context.Context) wrapper.JSONResult
}
