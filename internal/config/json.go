package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/cf-error-page/models"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
// The page override may be given either as an inline JSON object
// ("override") or as an already serialized string ("config_json").
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Page struct {
		Preset     string          `json:"preset"`
		Override   json.RawMessage `json:"override"`
		ConfigJSON string          `json:"config_json"`
	} `json:"page,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		TrustEdgeHeaders bool     `json:"trust_edge_headers"`
	} `json:"server,omitempty"`

	Adapter struct {
		TraceOrigin    string   `json:"trace_origin"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PatchTimeout Duration `json:"patch_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	override := jsonCfg.Page.ConfigJSON
	if raw := bytes.TrimSpace(jsonCfg.Page.Override); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		override = string(raw)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Page: Page{
			Preset:   models.Preset(jsonCfg.Page.Preset),
			Override: override,
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			TrustEdgeHeaders: jsonCfg.Server.TrustEdgeHeaders,
		},
		Adapter: Adapter{
			TraceOrigin:    jsonCfg.Adapter.TraceOrigin,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PatchTimeout: time.Duration(jsonCfg.Workers.PatchTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
