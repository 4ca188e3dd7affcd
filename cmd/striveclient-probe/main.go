// Command striveclient-probe exercises a storefront API from the command
// line: it bootstraps a session, optionally logs in, and prints the
// resulting session state plus a metrics dump.
//
// Useful as a smoke check against a staging backend:
//
//	striveclient-probe -base-url https://staging.example.com \
//	  -email alice@example.com -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	striveclient "github.com/strivelabs/striveclient"
	"github.com/strivelabs/striveclient/metrics/export/prometheus"
)

func main() {
	var (
		baseURL    = flag.String("base-url", "http://localhost:8000", "API origin")
		configPath = flag.String("config", "", "optional YAML config file; overrides -base-url")
		email      = flag.String("email", "", "login email; empty skips login")
		password   = flag.String("password", "", "login password")
		timeout    = flag.Duration("timeout", 15*time.Second, "per-request timeout")
		verbose    = flag.Bool("v", false, "debug logging")
		dump       = flag.Bool("metrics", true, "print metrics after the probe")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := striveclient.DefaultConfig()
	if *configPath != "" {
		loaded, err := striveclient.ConfigFromYAMLFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	} else {
		cfg.API.BaseURL = *baseURL
	}
	cfg.API.Timeout = *timeout

	client, err := striveclient.New().
		WithConfig(cfg).
		WithLogger(logger).
		WithRedirector(stderrRedirector{}).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(2)
	}
	defer client.Close()

	ctx := context.Background()

	start := time.Now()
	client.Bootstrap(ctx)
	state, user := client.Snapshot()
	fmt.Printf("bootstrap: %s in %s\n", state, time.Since(start).Round(time.Millisecond))

	if *email != "" {
		start = time.Now()
		u, err := client.Login(ctx, *email, *password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "login: %v\n", err)
			os.Exit(1)
		}
		user = u
		fmt.Printf("login: ok in %s\n", time.Since(start).Round(time.Millisecond))
	}

	if user != nil {
		fmt.Printf("user: id=%s email=%s role=%s\n", user.ID, user.Email, user.Role)
	}

	if *dump {
		exporter := prometheus.NewPrometheusExporter(client)
		fmt.Println("---- metrics ----")
		fmt.Print(exporter.Render())
	}
}

type stderrRedirector struct{}

func (stderrRedirector) Redirect(route string) {
	fmt.Fprintf(os.Stderr, "forced redirect -> %s\n", route)
}
