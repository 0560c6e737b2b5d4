package settings

import (
	"errors"
	"maps"
	"testing"
)

const bookingSampleEnv = "BOOKING_SAMPLE_CLIENT_ID=client-123\n" +
	"BOOKING_SAMPLE_TENANT_ID=tenant-456\n" +
	"BOOKING_SAMPLE_CLIENT_SECRET=booking-secret\n"

func TestBookingSample(t *testing.T) {
	t.Parallel()

	src := writeEnv(t, bookingSampleEnv)
	got, err := src.BookingSample()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BookingSampleSettings{
		ClientID:     "client-123",
		TenantID:     "tenant-456",
		ClientSecret: "booking-secret",
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestBookingSampleMissingTenantID(t *testing.T) {
	t.Parallel()

	src := writeEnv(t, "BOOKING_SAMPLE_CLIENT_ID=client-123\nBOOKING_SAMPLE_CLIENT_SECRET=booking-secret\n")
	_, err := src.BookingSample()

	var missing *MissingConfigurationError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingConfigurationError, got %v", err)
	}
	if missing.Service != ServiceBookingSample || missing.Key != keyBookingSampleTenantID {
		t.Fatalf("expected error for %s/%s, got %s/%s",
			ServiceBookingSample, keyBookingSampleTenantID, missing.Service, missing.Key)
	}
}

func TestBookingSampleMap(t *testing.T) {
	t.Parallel()

	src := writeEnv(t, bookingSampleEnv)
	got, err := src.BookingSampleMap()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"client_id":     "client-123",
		"tenant_id":     "tenant-456",
		"client_secret": "booking-secret",
	}
	if !maps.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
