// Package config resolves the optional settings of the CLI from command-line
// flags and CREATE_BEARNIE_* environment variables. Nothing is read from disk;
// every key has a usable zero value so the tool runs with no configuration.
package config
