package email

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/flexxoo/website/internal/config"
)

// Module provides lead notification delivery
var Module = fx.Module("email",
	fx.Provide(
		NewTemplateService,
		NewSender,
	),
)

// NewSender creates the sender selected by EMAIL_PROVIDER. With "auto",
// EmailJS wins when configured, then Mailgun, otherwise the no-op sender,
// which is logged as a warning in production.
func NewSender(cfg *config.Config, log *slog.Logger) Sender {
	ec := cfg.Email

	provider := ec.Provider
	fellBack := false
	if provider == config.ProviderAuto {
		switch {
		case ec.EmailJSConfigured():
			provider = config.ProviderEmailJS
		case ec.MailgunConfigured():
			provider = config.ProviderMailgun
		default:
			provider = config.ProviderNoop
			fellBack = true
		}
	}

	switch provider {
	case config.ProviderEmailJS:
		log.Info("using EmailJS sender", slog.String("service_id", ec.EmailJSServiceID))
		return NewEmailJSSender(EmailJSConfig{
			Endpoint:   ec.EmailJSEndpoint,
			ServiceID:  ec.EmailJSServiceID,
			PublicKey:  ec.EmailJSPublicKey,
			PrivateKey: ec.EmailJSPrivateKey,
			Timeout:    ec.Timeout,
		}, log)
	case config.ProviderMailgun:
		log.Info("using Mailgun sender",
			slog.String("domain", ec.MailgunDomain),
			slog.String("from", ec.FromEmail))
		return NewMailgunSender(MailgunConfig{
			Domain:    ec.MailgunDomain,
			APIKey:    ec.MailgunAPIKey,
			APIBase:   ec.MailgunAPIBase,
			FromEmail: ec.FromEmail,
			FromName:  ec.FromName,
			Timeout:   ec.Timeout,
		}, log)
	}

	if fellBack && cfg.IsProduction() {
		log.Warn("no email provider configured in production, leads will only be kept locally",
			slog.String("provider", ec.Provider))
	} else {
		log.Info("using no-op email sender (no provider configured)")
	}
	return newNoOpSender(log)
}
