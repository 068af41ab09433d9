// Package config defines the application configuration structure and
// loading logic. Configuration is sourced from an optional YAML file and
// environment variables, with environment variables taking precedence.
package config
