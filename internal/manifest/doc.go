// Package manifest reads, patches, and validates the package.json of a
// generated project. Patching rewrites the top-level "name" in place and keeps
// every other key, value, and key order; validation checks the result against
// an embedded JSON Schema and reports problems as issues, never as failures.
package manifest
