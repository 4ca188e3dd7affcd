package striveclient

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML schema. Durations are written as strings
// ("15s", "500ms") and parsed with time.ParseDuration; absent fields keep
// their defaults.
type fileConfig struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Endpoints map[string]string `yaml:"endpoints"`
	Cookies   struct {
		CSRF    string `yaml:"csrf"`
		Refresh string `yaml:"refresh"`
		Access  string `yaml:"access"`
	} `yaml:"cookies"`
	Refresh struct {
		Proactive *bool    `yaml:"proactive"`
		Leeway    string   `yaml:"leeway"`
		SkipPaths []string `yaml:"skip_paths"`
	} `yaml:"refresh"`
	Routes struct {
		Login             string   `yaml:"login"`
		Home              string   `yaml:"home"`
		PublicTokenRoutes []string `yaml:"public_token_routes"`
	} `yaml:"routes"`
	Breaker struct {
		Enabled             *bool  `yaml:"enabled"`
		MaxRequests         uint32 `yaml:"max_requests"`
		Interval            string `yaml:"interval"`
		Timeout             string `yaml:"timeout"`
		ConsecutiveFailures uint32 `yaml:"consecutive_failures"`
	} `yaml:"breaker"`
	Metrics struct {
		Enabled           *bool `yaml:"enabled"`
		LatencyHistograms bool  `yaml:"latency_histograms"`
	} `yaml:"metrics"`
}

// ConfigFromYAMLFile reads path and overlays it onto the defaults, so a
// config file only needs the fields it wants to change.
func ConfigFromYAMLFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return configFromYAML(raw)
}

func configFromYAML(raw []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := defaultConfig()

	if fc.API.BaseURL != "" {
		cfg.API.BaseURL = fc.API.BaseURL
	}
	if err := overlayDuration(&cfg.API.Timeout, fc.API.Timeout, "api.timeout"); err != nil {
		return Config{}, err
	}

	if err := overlayEndpoints(&cfg.Endpoints, fc.Endpoints); err != nil {
		return Config{}, err
	}

	if fc.Cookies.CSRF != "" {
		cfg.Cookies.CSRF = fc.Cookies.CSRF
	}
	if fc.Cookies.Refresh != "" {
		cfg.Cookies.Refresh = fc.Cookies.Refresh
	}
	if fc.Cookies.Access != "" {
		cfg.Cookies.Access = fc.Cookies.Access
	}

	if fc.Refresh.Proactive != nil {
		cfg.Refresh.Proactive = *fc.Refresh.Proactive
	}
	if err := overlayDuration(&cfg.Refresh.Leeway, fc.Refresh.Leeway, "refresh.leeway"); err != nil {
		return Config{}, err
	}
	if len(fc.Refresh.SkipPaths) > 0 {
		cfg.Refresh.SkipPaths = fc.Refresh.SkipPaths
	}

	if fc.Routes.Login != "" {
		cfg.Routes.Login = fc.Routes.Login
	}
	if fc.Routes.Home != "" {
		cfg.Routes.Home = fc.Routes.Home
	}
	if len(fc.Routes.PublicTokenRoutes) > 0 {
		cfg.Routes.PublicTokenRoutes = fc.Routes.PublicTokenRoutes
	}

	if fc.Breaker.Enabled != nil {
		cfg.Breaker.Enabled = *fc.Breaker.Enabled
	}
	if fc.Breaker.MaxRequests != 0 {
		cfg.Breaker.MaxRequests = fc.Breaker.MaxRequests
	}
	if err := overlayDuration(&cfg.Breaker.Interval, fc.Breaker.Interval, "breaker.interval"); err != nil {
		return Config{}, err
	}
	if err := overlayDuration(&cfg.Breaker.Timeout, fc.Breaker.Timeout, "breaker.timeout"); err != nil {
		return Config{}, err
	}
	if fc.Breaker.ConsecutiveFailures != 0 {
		cfg.Breaker.ConsecutiveFailures = fc.Breaker.ConsecutiveFailures
	}

	if fc.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *fc.Metrics.Enabled
	}
	cfg.Metrics.EnableLatencyHistograms = fc.Metrics.LatencyHistograms

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overlayDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = d
	return nil
}

func overlayEndpoints(dst *EndpointConfig, src map[string]string) error {
	for key, v := range src {
		switch key {
		case "profile":
			dst.Profile = v
		case "login":
			dst.Login = v
		case "register":
			dst.Register = v
		case "register_request":
			dst.RegisterRequest = v
		case "register_verify":
			dst.RegisterVerify = v
		case "logout":
			dst.Logout = v
		case "refresh":
			dst.Refresh = v
		case "csrf_token":
			dst.CSRFToken = v
		case "forgot_password":
			dst.ForgotPassword = v
		case "reset_password":
			dst.ResetPassword = v
		case "setup_validate":
			dst.SetupValidate = v
		case "setup_password":
			dst.SetupPassword = v
		case "users":
			dst.Users = v
		default:
			return fmt.Errorf("unknown endpoint key %q", key)
		}
	}
	return nil
}
