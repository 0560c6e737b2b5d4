// Package settings exposes typed accessors over a flat dotenv settings file,
// returning per-service credential bundles (API keys, endpoints, connection
// strings) to calling application code.
//
// Every accessor re-reads the source file, checks that the keys the service
// requires are present and non-empty, and returns a fixed-shape bundle. There
// is no caching and no shared state, so accessors are safe to call
// concurrently. Package-level accessors read the conventional ".env" file in
// the process working directory; a Source created with FromFile reads an
// alternate path.
package settings
