// Package config provides functionality for loading and managing application configuration.
//
// Settings for logging, the database, the GOST R 34.10-94 signer and the REST server are
// loaded from a YAML file with environment overrides, validated, and handed to the
// components that need them.
package config
