package settings

import (
	"errors"
	"reflect"
	"testing"
)

const azureAISearchEnv = "AZURE_AISEARCH_API_KEY=search-key-123\n" +
	"AZURE_AISEARCH_URL=https://contoso.search.windows.net\n" +
	"AZURE_AISEARCH_INDEX_NAME=articles\n"

func TestAzureAISearch(t *testing.T) {
	t.Parallel()

	t.Run("DefaultCallSkipsIndexName", func(t *testing.T) {
		t.Parallel()

		src := writeEnv(t, azureAISearchEnv)
		got, err := src.AzureAISearch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := AzureAISearchSettings{
			APIKey: "search-key-123",
			URL:    "https://contoso.search.windows.net",
		}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("WithIndexName", func(t *testing.T) {
		t.Parallel()

		src := writeEnv(t, azureAISearchEnv)
		got, err := src.AzureAISearch(WithIndexName())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := AzureAISearchSettings{
			APIKey:    "search-key-123",
			URL:       "https://contoso.search.windows.net",
			IndexName: "articles",
		}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("WithIndexNameMissing", func(t *testing.T) {
		t.Parallel()

		src := writeEnv(t, "AZURE_AISEARCH_API_KEY=search-key-123\nAZURE_AISEARCH_URL=https://contoso.search.windows.net\n")
		_, err := src.AzureAISearch(WithIndexName())

		var missing *MissingConfigurationError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingConfigurationError, got %v", err)
		}
		if missing.Service != ServiceAzureAISearch || missing.Key != keyAzureAISearchIndexName {
			t.Fatalf("expected error for %s/%s, got %s/%s",
				ServiceAzureAISearch, keyAzureAISearchIndexName, missing.Service, missing.Key)
		}
	})

	t.Run("URLCheckedBeforeAPIKey", func(t *testing.T) {
		t.Parallel()

		src := writeEnv(t, "UNRELATED=1\n")
		_, err := src.AzureAISearch()

		var missing *MissingConfigurationError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingConfigurationError, got %v", err)
		}
		if missing.Key != keyAzureAISearchURL {
			t.Fatalf("expected missing key %s, got %s", keyAzureAISearchURL, missing.Key)
		}
	})
}

func TestAzureAISearchMap(t *testing.T) {
	t.Parallel()

	src := writeEnv(t, azureAISearchEnv)
	got, err := src.AzureAISearchMap()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{
		"authentication": map[string]any{
			"type": "api_key",
			"key":  "search-key-123",
		},
		"endpoint":   "https://contoso.search.windows.net",
		"index_name": "articles",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// The mapping form always needs the index name, unlike the default call.
func TestAzureAISearchMapRequiresIndexName(t *testing.T) {
	t.Parallel()

	src := writeEnv(t, "AZURE_AISEARCH_API_KEY=search-key-123\nAZURE_AISEARCH_URL=https://contoso.search.windows.net\n")

	_, err := src.AzureAISearchMap()
	var missing *MissingConfigurationError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingConfigurationError, got %v", err)
	}
	if missing.Key != keyAzureAISearchIndexName {
		t.Fatalf("expected missing key %s, got %s", keyAzureAISearchIndexName, missing.Key)
	}
}
