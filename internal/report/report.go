// Package report builds and renders configuration reports over a settings
// source. Reports carry key names and presence only, never values.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jordanbean-msft/semantic-kernel/settings"
)

// Rendering formats accepted by Render.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ServiceStatus is the configuration state of a single service.
type ServiceStatus struct {
	Name            string   `json:"name" yaml:"name"`
	Configured      bool     `json:"configured" yaml:"configured"`
	MissingRequired []string `json:"missingRequired,omitempty" yaml:"missing_required,omitempty"`
	OptionalPresent []string `json:"optionalPresent,omitempty" yaml:"optional_present,omitempty"`
	Error           string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the configuration state of every selected service in one
// settings file.
type Report struct {
	Source      string          `json:"source" yaml:"source"`
	SourceFound bool            `json:"sourceFound" yaml:"source_found"`
	Configured  int             `json:"configured" yaml:"configured"`
	Total       int             `json:"total" yaml:"total"`
	Services    []ServiceStatus `json:"services" yaml:"services"`
}

// FullyConfigured reports whether every selected service has all of its
// required keys.
func (r Report) FullyConfigured() bool {
	return r.Configured == r.Total
}

// Build probes every selected service against src and collects the results.
// only filters services by name, case-insensitively; an empty filter selects
// all of them. An unreadable settings file is an ordinary outcome: the report
// marks the source as not found and every service as unconfigured.
func Build(src settings.Source, only []string) (Report, error) {
	selected, err := filterServices(settings.Services(), only)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Source: src.Path(),
		Total:  len(selected),
	}

	values, err := godotenv.Read(src.Path())
	if err != nil {
		for _, svc := range selected {
			r.Services = append(r.Services, ServiceStatus{
				Name:            svc.Name,
				MissingRequired: svc.Required,
			})
		}
		return r, nil
	}
	r.SourceFound = true

	for _, svc := range selected {
		status := ServiceStatus{Name: svc.Name}
		for _, key := range svc.Required {
			if values[key] == "" {
				status.MissingRequired = append(status.MissingRequired, key)
			}
		}
		for _, key := range svc.Optional {
			if values[key] != "" {
				status.OptionalPresent = append(status.OptionalPresent, key)
			}
		}

		// the accessor itself decides whether the service is configured
		if err := svc.Probe(src); err != nil {
			var missing *settings.MissingConfigurationError
			if !errors.As(err, &missing) {
				status.Error = err.Error()
			}
		} else {
			status.Configured = true
			r.Configured++
		}

		r.Services = append(r.Services, status)
	}

	return r, nil
}

// Render encodes the report as YAML or indented JSON.
func Render(r Report, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

func filterServices(catalog []settings.Service, only []string) ([]settings.Service, error) {
	if len(only) == 0 {
		return catalog, nil
	}

	known := make(map[string]bool, len(catalog))
	for _, svc := range catalog {
		known[strings.ToLower(svc.Name)] = true
	}

	keep := make(map[string]bool, len(only))
	for _, name := range only {
		normalized := strings.ToLower(name)
		if !known[normalized] {
			return nil, fmt.Errorf("unknown service %q", name)
		}
		keep[normalized] = true
	}

	out := make([]settings.Service, 0, len(keep))
	for _, svc := range catalog {
		if keep[strings.ToLower(svc.Name)] {
			out = append(out, svc)
		}
	}
	return out, nil
}
