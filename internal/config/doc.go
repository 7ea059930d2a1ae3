// Package config manages user-level settings stored at ~/.agenthub/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the catalog location and the discovery rate limit, with environment
// variables (AGENTHUB_*) taking precedence over the file.
package config
