package gogs

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	bracedEnvPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)
	bareEnvPattern   = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*)`)
)

// Config is the file form of a client setup.
//
//	base_url: https://git.example.com/api/v1
//	timeout: 10s
//	actors:
//	  admin:
//	    username: root
//	    password: ${GOGS_ADMIN_PASSWORD}
//	  ci:
//	    username: ci
//	    token: $GOGS_CI_TOKEN
type Config struct {
	BaseURL    string                 `yaml:"base_url"`
	Timeout    time.Duration          `yaml:"timeout"`
	RetryCount int                    `yaml:"retry_count"`
	RateLimit  RateLimitConfig        `yaml:"rate_limit"`
	UserAgent  string                 `yaml:"user_agent"`
	Actors     map[string]ActorConfig `yaml:"actors"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ActorConfig is a credential record. Which scheme it produces is decided
// by [ResolveActor].
type ActorConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Token    string `yaml:"token"`
	Email    string `yaml:"email"`
}

// LoadConfig reads a YAML config file. ${VAR} and $VAR references are
// replaced with environment values before parsing; unset variables are
// left as written.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if c.RetryCount < 0 {
		return errors.New("retry_count must be non-negative")
	}

	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate_limit values must be non-negative")
	}

	for name, a := range c.Actors {
		if a.Password != "" && a.Token != "" {
			return fmt.Errorf("actor %q: set either password or token, not both", name)
		}
	}

	return nil
}

// Options converts the file settings into client options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithTimeout(c.Timeout),
		WithRetryCount(c.RetryCount),
		WithRateLimit(c.RateLimit.RequestsPerSecond, c.RateLimit.Burst),
	}

	if c.UserAgent != "" {
		opts = append(opts, WithUserAgent(c.UserAgent))
	}

	return opts
}

// Actor returns the named actor, or an anonymous one when the name is not
// configured.
func (c *Config) Actor(name string) Actor {
	a, ok := c.Actors[name]
	if !ok {
		return Anonymous()
	}
	return ResolveActor(a.Username, a.Password, a.Token)
}

// NewFromConfig creates a client from cfg. Extra options are applied after
// the ones derived from the file.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config must not be nil")
	}

	return New(cfg.BaseURL, append(cfg.Options(), opts...)...)
}

func expandEnvVars(s string) string {
	s = bracedEnvPattern.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[2 : len(match)-1]); ok {
			return val
		}

		return match
	})

	return bareEnvPattern.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[1:]); ok {
			return val
		}

		return match
	})
}
