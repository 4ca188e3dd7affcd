package striveclient

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestSkipRefreshPathsDerivedFromEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	paths := cfg.skipRefreshPaths()

	for _, want := range []string{
		cfg.Endpoints.Login,
		cfg.Endpoints.Logout,
		cfg.Endpoints.Refresh,
		cfg.Endpoints.Profile,
		cfg.Endpoints.CSRFToken,
		cfg.Endpoints.ForgotPassword,
	} {
		found := false
		for _, p := range paths {
			if p == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("derived skip list missing %q: %v", want, paths)
		}
	}
}

func TestSkipRefreshPathsExplicitOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Refresh.SkipPaths = []string{"/api/custom/"}

	paths := cfg.skipRefreshPaths()
	if len(paths) != 1 || paths[0] != "/api/custom/" {
		t.Fatalf("explicit skip list not honored: %v", paths)
	}
}

func TestCloneConfigIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	clone := cloneConfig(cfg)

	clone.Routes.PublicTokenRoutes[0] = "/mutated"
	if cfg.Routes.PublicTokenRoutes[0] == "/mutated" {
		t.Fatal("clone shares PublicTokenRoutes backing array")
	}
}

func TestConfigFromYAMLOverlay(t *testing.T) {
	raw := []byte(`
api:
  base_url: https://shop.example.com
  timeout: 30s
endpoints:
  login: /v2/login/
cookies:
  csrf: xsrf
refresh:
  proactive: false
  leeway: 5s
routes:
  login: /signin
breaker:
  enabled: false
metrics:
  enabled: true
  latency_histograms: true
`)
	cfg, err := configFromYAML(raw)
	if err != nil {
		t.Fatalf("configFromYAML: %v", err)
	}

	if cfg.API.BaseURL != "https://shop.example.com" {
		t.Fatalf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Endpoints.Login != "/v2/login/" {
		t.Fatalf("Login = %q", cfg.Endpoints.Login)
	}
	// Untouched endpoints keep defaults.
	if cfg.Endpoints.Profile != "/api/profile/" {
		t.Fatalf("Profile = %q, want default", cfg.Endpoints.Profile)
	}
	if cfg.Cookies.CSRF != "xsrf" || cfg.Cookies.Refresh != "refresh_token" {
		t.Fatalf("cookies = %+v", cfg.Cookies)
	}
	if cfg.Refresh.Proactive {
		t.Fatal("proactive override lost")
	}
	if cfg.Refresh.Leeway != 5*time.Second {
		t.Fatalf("Leeway = %v", cfg.Refresh.Leeway)
	}
	if cfg.Routes.Login != "/signin" || cfg.Routes.Home != "/" {
		t.Fatalf("routes = %+v", cfg.Routes)
	}
	if cfg.Breaker.Enabled {
		t.Fatal("breaker override lost")
	}
	if !cfg.Metrics.EnableLatencyHistograms {
		t.Fatal("latency histograms override lost")
	}
}

func TestConfigFromYAMLEmptyKeepsDefaults(t *testing.T) {
	cfg, err := configFromYAML([]byte("{}"))
	if err != nil {
		t.Fatalf("configFromYAML: %v", err)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Fatalf("BaseURL = %q", cfg.API.BaseURL)
	}
}

func TestConfigFromYAMLRejectsBadDuration(t *testing.T) {
	_, err := configFromYAML([]byte("api:\n  timeout: fast\n"))
	if err == nil || !strings.Contains(err.Error(), "api.timeout") {
		t.Fatalf("expected api.timeout error, got %v", err)
	}
}

func TestConfigFromYAMLRejectsUnknownEndpointKey(t *testing.T) {
	_, err := configFromYAML([]byte("endpoints:\n  checkout: /api/checkout/\n"))
	if err == nil || !strings.Contains(err.Error(), "checkout") {
		t.Fatalf("expected unknown endpoint error, got %v", err)
	}
}

func TestConfigFromYAMLValidatesResult(t *testing.T) {
	_, err := configFromYAML([]byte("api:\n  base_url: not-absolute\n"))
	if err == nil {
		t.Fatal("expected validation failure for relative base url")
	}
}
