// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every section is optional; missing values fall back to defaults that suit
// local development. A .env file is honoured before the environment is
// read, and RAIL_PULSE_CONFIG overrides the search path.
package config
