package settings

import (
	"errors"
	"strings"
	"testing"
)

func TestServicesCatalog(t *testing.T) {
	t.Parallel()

	catalog := Services()
	if len(catalog) != 14 {
		t.Fatalf("expected 14 services, got %d", len(catalog))
	}
	if catalog[0].Name != ServiceOpenAI {
		t.Fatalf("expected first service %s, got %s", ServiceOpenAI, catalog[0].Name)
	}
	if last := catalog[len(catalog)-1].Name; last != ServiceBookingSample {
		t.Fatalf("expected last service %s, got %s", ServiceBookingSample, last)
	}

	seen := make(map[string]bool, len(catalog))
	for _, svc := range catalog {
		if seen[svc.Name] {
			t.Fatalf("duplicate service name %s", svc.Name)
		}
		seen[svc.Name] = true

		if len(svc.Required) == 0 {
			t.Fatalf("service %s has no required keys", svc.Name)
		}
		if svc.probe == nil {
			t.Fatalf("service %s has no probe", svc.Name)
		}
	}
}

func TestServicesReturnsDefensiveCopies(t *testing.T) {
	t.Parallel()

	first := Services()
	first[0].Required[0] = "MUTATED"

	again := Services()
	if again[0].Required[0] == "MUTATED" {
		t.Fatal("expected defensive copy of required keys")
	}
}

func TestProbeSucceedsAgainstFullFile(t *testing.T) {
	t.Parallel()

	src := writeEnv(t, fullEnvContent())
	for _, svc := range Services() {
		svc := svc
		t.Run(svc.Name, func(t *testing.T) {
			t.Parallel()

			if err := svc.Probe(src); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// Removing any single required key of any service must fail that service's
// probe with an error naming exactly that service and key.
func TestProbeReportsEachMissingRequiredKey(t *testing.T) {
	t.Parallel()

	for _, svc := range Services() {
		svc := svc
		for _, key := range svc.Required {
			key := key
			t.Run(svc.Name+"/"+key, func(t *testing.T) {
				t.Parallel()

				src := writeEnv(t, fullEnvContent(key))
				err := svc.Probe(src)

				var missing *MissingConfigurationError
				if !errors.As(err, &missing) {
					t.Fatalf("expected MissingConfigurationError, got %v", err)
				}
				if missing.Service != svc.Name || missing.Key != key {
					t.Fatalf("expected error for %s/%s, got %s/%s",
						svc.Name, key, missing.Service, missing.Key)
				}
			})
		}
	}
}

func TestProbeToleratesMissingOptionalKeys(t *testing.T) {
	t.Parallel()

	for _, svc := range Services() {
		svc := svc
		for _, key := range svc.Optional {
			key := key
			t.Run(svc.Name+"/"+key, func(t *testing.T) {
				t.Parallel()

				src := writeEnv(t, fullEnvContent(key))
				if err := svc.Probe(src); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			})
		}
	}
}

// fullEnvContent renders a file body configuring every key of every service,
// minus the given keys.
func fullEnvContent(skip ...string) string {
	skipped := make(map[string]bool, len(skip))
	for _, key := range skip {
		skipped[key] = true
	}

	var b strings.Builder
	for _, svc := range Services() {
		for _, key := range append(svc.Required, svc.Optional...) {
			if skipped[key] {
				continue
			}
			b.WriteString(key)
			b.WriteString("=val-")
			b.WriteString(key)
			b.WriteString("\n")
		}
	}
	return b.String()
}
