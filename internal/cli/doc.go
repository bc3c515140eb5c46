// Package cli defines the single Cobra command of create-bearnie. It handles
// argument and flag parsing, loads configuration, and turns the scaffold
// Result into console output and an exit code; the scaffolding itself lives
// in the scaffold package.
package cli
