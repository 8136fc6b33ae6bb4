package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/syssam/mvcgen/compiler/gen"
	"github.com/syssam/mvcgen/schema"
)

var (
	check   = color.New(color.FgGreen).Sprint("✓")
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
)

// printer writes the progress and summary lines of a run.
type printer struct {
	w io.Writer
}

// Progress implements gen.Reporter.
func (p printer) Progress(s gen.Progress) {
	fmt.Fprintf(p.w, "  %s %s\n", check, describe(s))
}

func describe(s gen.Progress) string {
	switch s.Phase {
	case gen.PhaseStructure:
		return "Project structure created"
	case gen.PhaseStatic:
		return fmt.Sprintf("Base files generated (%d files)", len(s.Files))
	case gen.PhaseEntity:
		return fmt.Sprintf("Entity %s generated (model, repository, controller)", s.Subject)
	case gen.PhaseView:
		if s.Subject == "" {
			return "Layout generated"
		}
		return fmt.Sprintf("View for %s generated", s.Subject)
	case gen.PhaseAuth:
		return "Authentication generated"
	case gen.PhaseRoutes:
		return "Routes generated"
	default:
		return fmt.Sprintf("%s: %d files", s.Phase, len(s.Files))
	}
}

// FieldAdded implements wizard.Notifier.
func (p printer) FieldAdded(name, declared string) {
	fmt.Fprintf(p.w, "    %s Field '%s' (%s) added\n", check, name, declared)
}

// Section implements wizard.Notifier.
func (p printer) Section(title string) {
	fmt.Fprintln(p.w)
	heading.Fprintf(p.w, "--- %s ---\n", title)
}

func (p printer) summary(spec *schema.ProjectSpec) {
	fmt.Fprintln(p.w)
	heading.Fprintln(p.w, "Summary")
	fmt.Fprintf(p.w, "  %s %s\n", label.Sprint("Project:"), spec.ProjectName)
	fmt.Fprintf(p.w, "  %s %d\n", label.Sprint("Entities:"), len(spec.Entities))
	for _, e := range spec.Entities {
		fmt.Fprintf(p.w, "    - %s (%d fields)\n", e.Name, len(e.Fields))
	}
	fmt.Fprintf(p.w, "  %s %s\n", label.Sprint("Views:"), yesNo(spec.WithPresentationViews))
	fmt.Fprintf(p.w, "  %s %s\n", label.Sprint("Authentication:"), yesNo(spec.WithAuthentication))
	fmt.Fprintln(p.w)
}

func (p printer) done(m *gen.Manifest, schemaSQL bool) {
	fmt.Fprintln(p.w)
	color.New(color.FgGreen, color.Bold).Fprintf(p.w, "Project generated in %s\n", m.Root)
	fmt.Fprintln(p.w)
	warn.Fprintln(p.w, "Before running the project:")
	step := 1
	if schemaSQL {
		fmt.Fprintf(p.w, "  %d. Create the database and load %s\n", step, filepath.Join("config", "schema.sql"))
	} else {
		fmt.Fprintf(p.w, "  %d. Create the database and its tables\n", step)
	}
	step++
	fmt.Fprintf(p.w, "  %d. Edit %s\n", step, filepath.Join("config", "database.env"))
	step++
	fmt.Fprintf(p.w, "  %d. Run: cd %s && go mod tidy && go run ./public\n", step, m.Root)
	fmt.Fprintln(p.w)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
