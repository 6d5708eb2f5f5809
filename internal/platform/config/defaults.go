package config

const defaultServerPort = 8080

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver": StoreDriverFile,
		"store.path":   "members.txt",
		"store.dsn":    "",

		"flash.backend":             FlashBackendCookie,
		"flash.cookie_name":         "roster_flash",
		"flash.session_cookie_name": "roster_session",
		"flash.secret":              "",
		"flash.ttl":                 "5m",
		"flash.redis.addr":          "",
		"flash.redis.password":      "",
		"flash.redis.db":            0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "member-roster",
	}
}
