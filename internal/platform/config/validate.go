package config

import (
	"errors"
	"fmt"
)

// minFlashSecretLength is the shortest accepted HMAC key for flash cookies.
const minFlashSecretLength = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Flash.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StoreConfig) validate() error {
	switch st.Driver {
	case StoreDriverFile:
		if st.Path == "" {
			return errors.New("store.path must not be empty when driver is file")
		}
	case StoreDriverPostgres:
		if st.DSN == "" {
			return errors.New("store.dsn must not be empty when driver is postgres")
		}
	default:
		return fmt.Errorf("store.driver must be one of: file, postgres; got %q", st.Driver)
	}
	return nil
}

func (f *FlashConfig) validate() error {
	var errs []error

	switch f.Backend {
	case FlashBackendCookie:
		if f.CookieName == "" {
			errs = append(errs, errors.New("flash.cookie_name must not be empty when backend is cookie"))
		}
		if f.Secret != "" && len(f.Secret) < minFlashSecretLength {
			errs = append(errs, fmt.Errorf("flash.secret must be at least %d bytes when set", minFlashSecretLength))
		}
	case FlashBackendRedis:
		if f.SessionCookieName == "" {
			errs = append(errs, errors.New("flash.session_cookie_name must not be empty when backend is redis"))
		}
		if f.Redis.Addr == "" {
			errs = append(errs, errors.New("flash.redis.addr must not be empty when backend is redis"))
		}
		if f.TTL <= 0 {
			errs = append(errs, errors.New("flash.ttl must be positive when backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("flash.backend must be one of: cookie, redis; got %q", f.Backend))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
