// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple layers; for every field the first
// non-zero value wins:
//  1. CLI flags ([OverridesFromCommand])
//  2. Environment source ([FromEnviron], [FromDotEnv])
//  3. JSON or YAML config file
//  4. Defaults
//
// The merged result is validated in two stages: per-field rules (required
// keys, secret strength, CORS wildcard) and, in production mode, cross-field
// safety invariants. Any failure is a [*ConfigurationError] listing every
// violation of the failing stage.
//
// The main entry points are [Load] and the memoizing [Provider].
package config
