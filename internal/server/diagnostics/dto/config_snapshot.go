package dto

// Presence values reported in place of the SMTP password.
const (
	SecretSet    = "SET"
	SecretNotSet = "NOT SET"
)

// ConfigSnapshot is the body of GET /api/test-env. It is built per request and never
// stored. Unset variables serialize as null. Field order is the wire order.
type ConfigSnapshot struct {
	SMTPHost *string `json:"smtp_host" example:"mail.example.com"`
	SMTPPort *string `json:"smtp_port" example:"587"`
	SMTPUser *string `json:"smtp_user" example:"alerts"`
	SMTPPass string  `json:"smtp_pass" enums:"SET,NOT SET" example:"SET"`
	SMTPFrom *string `json:"smtp_from" example:"noreply@example.com"`
	DBHost   *string `json:"db_host" example:"db.internal"`
	NodeEnv  *string `json:"node_env" example:"production"`
}
