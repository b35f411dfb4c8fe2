package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/cf-error-page/models"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args into a fresh
// [StructuredConfig]. Flags that are not given stay at their zero value so
// they do not override other sources when merged.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-trust-edge-headers patch each page from inbound edge headers
//	-preset page preset (default, catastrophic, working)
//	-page-config JSON-serialized partial page configuration
//	-trace-origin origin whose /cdn-cgi/trace is queried at startup
//	-trace-timeout diagnostic request timeout (e.g., "5s")
//	-patch-timeout overall patch step timeout (e.g., "10s")
//	-app-version application version string
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var trustEdgeHeaders bool
	var preset string
	var pageConfig string
	var traceOrigin string
	var traceTimeout time.Duration
	var patchTimeout time.Duration
	var appVersion string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&trustEdgeHeaders, "trust-edge-headers", false, "Patch each page from inbound edge headers")
	fs.StringVar(&preset, "preset", "", "Page preset (default, catastrophic, working)")
	fs.StringVar(&pageConfig, "page-config", "", "JSON-serialized partial page configuration")
	fs.StringVar(&traceOrigin, "trace-origin", "", "Origin whose /cdn-cgi/trace is queried at startup")
	fs.DurationVar(&traceTimeout, "trace-timeout", 0, "Diagnostic request timeout (e.g., 5s)")
	fs.DurationVar(&patchTimeout, "patch-timeout", 0, "Patch step timeout (e.g., 10s)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Page: Page{
			Preset:   models.Preset(preset),
			Override: pageConfig,
		},
		Server: Server{
			HTTPAddress:      serverAddress.String(),
			RequestTimeout:   requestTimeout,
			TrustEdgeHeaders: trustEdgeHeaders,
		},
		Adapter: Adapter{
			TraceOrigin:    traceOrigin,
			RequestTimeout: traceTimeout,
		},
		Workers: Workers{
			PatchTimeout: patchTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
