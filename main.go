// Command browserprint demonstrates the library surface: pick a catalog
// profile, build an HttpClient impersonating it, and issue a request.
//
// Startup sequence:
//  1. Load configuration (JSON file or defaults).
//  2. Warm up the catalog concurrently, catching any malformed profile
//     before it reaches a live request.
//  3. Resolve the requested profile and build an HttpClient.
//  4. Issue one GET request and print the fingerprint it produced.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/client"
	"github.com/firasghr/browserprint/config"
	"github.com/firasghr/browserprint/fingerprint"
	"github.com/firasghr/browserprint/logger"
	"github.com/firasghr/browserprint/metrics"
)

func main() {
	configFile := flag.String("config", "", "Path to JSON config file (optional; uses defaults if omitted)")
	profileName := flag.String("profile", "", "Catalog profile name to impersonate (overrides the config's default_profile)")
	url := flag.String("url", "", "URL to fetch")
	flag.Parse()

	log := logger.New(logger.LevelInfo)
	log.Info("browserprint starting up")

	var cfg *config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			log.Errorf("failed to load config from %q: %v", *configFile, err)
			os.Exit(1)
		}
		log.Infof("configuration loaded from %q", *configFile)
	} else {
		cfg = config.DefaultConfig()
		log.Info("using default configuration")
	}

	report := catalog.Warmup(cfg.WarmupWorkers)
	if len(report.Failures) > 0 {
		for _, f := range report.Failures {
			log.Errorf("profile %q failed warmup: %v", f.Profile, f.Err)
		}
		os.Exit(1)
	}
	log.Infof("warmed up %d catalog profiles", report.Checked)

	name := *profileName
	if name == "" {
		name = cfg.DefaultProfile
	}
	profile, err := catalog.Get(name)
	if err != nil {
		log.Errorf("unknown profile %q: %v", name, err)
		os.Exit(1)
	}
	log.Infof("impersonating profile %q (family=%v)", profile.Name, profile.Family)

	ja3 := fingerprint.JA3(profile.Spec)
	ja4 := fingerprint.JA4(profile.Spec)
	log.Infof("ja3=%s ja4=%s", ja3.Hash, ja4)

	m := metrics.NewMetrics()
	c, err := client.New(client.Config{
		Profile:            profile,
		MaxRedirects:       cfg.MaxRedirects,
		AcceptInvalidCerts: cfg.AcceptInvalidCerts,
		TimeoutTotal:       cfg.RequestTimeout,
		Metrics:            m,
	})
	if err != nil {
		log.Errorf("failed to build client: %v", err)
		os.Exit(1)
	}

	if *url == "" {
		log.Info("no -url given; exiting after warmup and client construction")
		return
	}

	resp, err := c.Get(context.Background(), *url)
	if err != nil {
		log.Errorf("request to %q failed: %v", *url, err)
		os.Exit(1)
	}

	total, success, failed, fallbackH3H2, fallbackH2H1 := m.Snapshot()
	fmt.Printf("status=%d layer=%v bytes=%d\n", resp.StatusCode, resp.Layer, len(resp.Body))
	log.Infof("metrics – total: %d success: %d failed: %d fallback(h3→h2): %d fallback(h2→h1): %d",
		total, success, failed, fallbackH3H2, fallbackH2H1)
}
