// Package scaffold creates a new Bearnie project. Run resolves the project
// name, handles an existing target directory, copies the template tree,
// patches package.json, and writes .gitignore, reporting the outcome as a
// Result instead of exiting the process.
package scaffold
