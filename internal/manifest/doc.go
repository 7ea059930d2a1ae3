// Package manifest reads agent manifest files. A manifest is a YAML (or
// JSON) description of a single agent suitable for `agenthub add`; parsing
// yields the catalog record directly. The package also carries the semver
// helpers used to sanity-check declared agent versions.
package manifest
