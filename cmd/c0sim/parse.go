package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type config struct {
	Samples []float32
	Timeout time.Duration
	Verbose bool
}

type fileConfig struct {
	Samples []float32 `yaml:"samples"`
	Timeout string    `yaml:"timeout"`
}

func parseCommandLine() (*config, error) {
	configPath := pflag.StringP("config", "c", "", "Read the sample window from a yaml configuration file")
	samples := pflag.StringP("samples", "s", "", "Comma-separated sample window, e.g. 1.0,2.5,3.0")
	timeout := pflag.Duration("timeout", 5*time.Second, "How long the host waits for the device to finish a command")
	verbose := pflag.BoolP("verbose", "v", false, "Log device and host activity")
	pflag.Parse()

	cfg := &config{
		Timeout: *timeout,
		Verbose: *verbose,
	}
	if *configPath != "" {
		if err := parseFromFile(*configPath, cfg); err != nil {
			return nil, err
		}
	}
	if *samples != "" {
		parsed, err := parseSamples(*samples)
		if err != nil {
			return nil, err
		}
		cfg.Samples = parsed
	}
	if len(cfg.Samples) == 0 {
		return nil, fmt.Errorf("no samples given, use --samples or a --config file")
	}
	return cfg, nil
}

func parseFromFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %s: %v", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("could not parse config file %s: %v", path, err)
	}
	cfg.Samples = fc.Samples
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %v", fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}

func parseSamples(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	out := make([]float32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %v", p, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}
