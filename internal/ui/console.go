package ui

import (
	"fmt"
	"io"

	"github.com/lexingtonthemes/create-bearnie/internal/branding"
)

// Banner prints the greeting shown before any prompt.
func Banner(w io.Writer) {
	logo := fmt.Sprintf("%s %s", Amber("🐻"), Bold(branding.LogoName()))
	fmt.Fprintf(w, "\n  %s\n\n  %s Let's create your %s project.\n\n",
		logo, Amber("Hey!"), branding.DisplayName())
}

// Cancelled prints the notice for a run the user backed out of.
func Cancelled(w io.Writer) {
	fmt.Fprintf(w, "\n  %s\n\n", Yellow("Cancelled."))
}

// Creating announces the target directory before the template is copied.
func Creating(w io.Writer, dir string) {
	fmt.Fprintf(w, "\n  %s %s\n\n", Dim("Creating project in"), Cyan(dir))
}

// Created confirms the project files are on disk.
func Created(w io.Writer) {
	fmt.Fprintf(w, "  %s Created project files\n", Green("✓"))
}

// Warning prints a non-fatal problem found while scaffolding.
func Warning(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", Yellow("!"), msg)
}

// Error prints a fatal error, prefixed "Error:".
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "\n  %s %s\n\n", RedFor(w, "Error:"), err.Error())
}

// NextSteps prints the success message and follow-up commands for name.
func NextSteps(w io.Writer, name string) {
	fmt.Fprintf(w, "\n  %s Your %s project is ready.\n\n", Green("Done!"), branding.DisplayName())
	fmt.Fprintf(w, "  %s\n\n", Bold("Next steps:"))
	fmt.Fprintf(w, "    %s cd %s\n", Dim("1."), Cyan(name))
	fmt.Fprintf(w, "    %s npm install\n", Dim("2."))
	fmt.Fprintf(w, "    %s npx %s add button card\n", Dim("3."), branding.LogoName())
	fmt.Fprintf(w, "    %s npm run dev\n\n", Dim("4."))
	fmt.Fprintf(w, "  %s %s\n\n", Dim("Browse components at"), Link(branding.DocsLabel(), branding.DocsURL()))
	fmt.Fprintf(w, "  %s %s %s %s\n\n",
		Dim("Made by"), Link(branding.AuthorName(), branding.AuthorURL()),
		Dim("at"), Link(branding.StudioName(), branding.StudioURL()))
}
