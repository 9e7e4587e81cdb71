package usecase

import (
	"context"
	"net/http"

	"github.com/Alwanly/vendor-portal-diagnostics/internal/server/diagnostics/dto"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/envsource"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/wrapper"
)

// Environment variables echoed by ConfigSnapshot.
const (
	EnvSMTPHost = "SMTP_HOST"
	EnvSMTPPort = "SMTP_PORT"
	EnvSMTPUser = "SMTP_USER"
	EnvSMTPPass = "SMTP_PASS"
	EnvSMTPFrom = "SMTP_FROM"
	EnvDBHost   = "DB_HOST"
	EnvNodeEnv  = "NODE_ENV"
)

type UseCase struct {
	env envsource.Source
}

func NewUseCase(env envsource.Source) UseCaseInterface {
	return &UseCase{env: env}
}

// ConfigSnapshot builds a fresh snapshot from the environment source. Only the
// password is masked; the other values are returned exactly as set.
func (uc *UseCase) ConfigSnapshot(ctx context.Context) wrapper.JSONResult {
	snapshot := BuildSnapshot(uc.env)

	logger.AddToContext(ctx,
		logger.String(logger.FieldOperation, "config_echo"),
		logger.Bool(logger.FieldSecretSet, snapshot.SMTPPass == dto.SecretSet),
	)
	if snapshot.NodeEnv != nil {
		logger.AddToContext(ctx, logger.String(logger.FieldNodeEnv, *snapshot.NodeEnv))
	}

	return wrapper.ResponseSuccess(http.StatusOK, snapshot)
}

func (uc *UseCase) Health(ctx context.Context) wrapper.JSONResult {
	logger.AddToContext(ctx, logger.String(logger.FieldOperation, "health_check"))
	return wrapper.ResponseSuccess(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}

// BuildSnapshot reads the allow-listed variables from src.
func BuildSnapshot(src envsource.Source) dto.ConfigSnapshot {
	pass := dto.SecretNotSet
	if envsource.IsSet(src, EnvSMTPPass) {
		pass = dto.SecretSet
	}

	return dto.ConfigSnapshot{
		SMTPHost: envsource.Lookup(src, EnvSMTPHost),
		SMTPPort: envsource.Lookup(src, EnvSMTPPort),
		SMTPUser: envsource.Lookup(src, EnvSMTPUser),
		SMTPPass: pass,
		SMTPFrom: envsource.Lookup(src, EnvSMTPFrom),
		DBHost:   envsource.Lookup(src, EnvDBHost),
		NodeEnv:  envsource.Lookup(src, EnvNodeEnv),
	}
}
