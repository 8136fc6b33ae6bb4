package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/syssam/mvcgen/schema"
)

// Wizard asks the questions of the init command in a fixed order: project
// name, entity count, each entity with its fields until a blank field name,
// then the views and authentication switches.
type Wizard struct {
	prompt Prompter
	notify Notifier
}

// New returns a wizard asking through p. A nil n discards notifications.
func New(p Prompter, n Notifier) *Wizard {
	if n == nil {
		n = nopNotifier{}
	}
	return &Wizard{prompt: p, notify: n}
}

// Run asks every question and returns the collected description.
func (w *Wizard) Run() (*schema.ProjectSpec, error) {
	name, err := w.prompt.Input("Project name", DefaultProjectName, validateProject)
	if err != nil {
		return nil, err
	}
	count, err := w.entityCount()
	if err != nil {
		return nil, err
	}
	spec := &schema.ProjectSpec{
		ProjectName: strings.TrimSpace(name),
		Entities:    make([]schema.EntitySpec, 0, count),
	}
	for i := 1; i <= count; i++ {
		e, err := w.entity(i)
		if err != nil {
			return nil, err
		}
		spec.Entities = append(spec.Entities, e)
	}
	if spec.WithPresentationViews, err = w.prompt.Confirm("Generate HTML views?"); err != nil {
		return nil, err
	}
	if spec.WithAuthentication, err = w.prompt.Confirm("Generate authentication?"); err != nil {
		return nil, err
	}
	return spec, nil
}

func (w *Wizard) entityCount() (int, error) {
	answer, err := w.prompt.Input("Number of entities", "1", validateCount)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(answer))
}

func (w *Wizard) entity(i int) (schema.EntitySpec, error) {
	w.notify.Section(fmt.Sprintf("Entity #%d", i))
	name, err := w.prompt.Input(fmt.Sprintf("Name of entity #%d", i), "", required("entity name"))
	if err != nil {
		return schema.EntitySpec{}, err
	}
	e := schema.EntitySpec{Name: EntityName(name)}
	for {
		field, err := w.prompt.Input(fmt.Sprintf("Field of %s (blank to finish)", e.Name), "", nil)
		if err != nil {
			return schema.EntitySpec{}, err
		}
		field = strings.TrimSpace(field)
		if field == "" {
			return e, nil
		}
		declared, err := w.prompt.Input("Type (string/int/float/bool/datetime)", DefaultFieldType, nil)
		if err != nil {
			return schema.EntitySpec{}, err
		}
		if strings.TrimSpace(declared) == "" {
			declared = DefaultFieldType
		}
		f := schema.Field(field, declared)
		e.Fields = append(e.Fields, f)
		w.notify.FieldAdded(f.Name, f.DeclaredType())
	}
}

// EntityName trims name and upper-cases its first letter so the generated
// types are exported.
func EntityName(name string) string {
	name = strings.TrimSpace(name)
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateProject(s string) error {
	if strings.ContainsAny(s, `/\`) {
		return errors.New("project name must not contain path separators")
	}
	return nil
}

func validateCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errors.New("number of entities must be at least 1")
	}
	return nil
}
