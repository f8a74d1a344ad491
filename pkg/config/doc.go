// Package config handles configuration management for binlink.
// It supports loading configuration from multiple sources including
// the embedded defaults, a TOML or YAML file in the project directory,
// environment variables, and command-line flags.
package config
