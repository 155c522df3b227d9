package main

// Config is the process configuration read from PAYLOADKIT_* variables.
// Backend and HTTP settings are loaded separately from their own packages.
type Config struct {
	Env                string `env:"PAYLOADKIT_ENV" envDefault:"development"`
	ServiceName        string `env:"PAYLOADKIT_SERVICE_NAME" envDefault:"payloadd"`
	LogLevel           string `env:"PAYLOADKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat          string `env:"PAYLOADKIT_LOG_FORMAT" envDefault:"json"`
	RulesPath          string `env:"PAYLOADKIT_RULES_PATH" envDefault:"config/rules.yaml"`
	Store              string `env:"PAYLOADKIT_STORE" envDefault:"memory"` // memory, postgres, redis, mongo, opensearch or s3
	MaxBodyBytes       int64  `env:"PAYLOADKIT_MAX_BODY_BYTES" envDefault:"1048576"`
	UserHeader         string `env:"PAYLOADKIT_USER_HEADER" envDefault:"X-User-ID"`
	EnforceConstraints bool   `env:"PAYLOADKIT_ENFORCE_CONSTRAINTS" envDefault:"false"`
}
