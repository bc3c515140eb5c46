// Package runtime probes the local Node.js installation and checks it against
// the engines.node range declared by a generated project.
package runtime
