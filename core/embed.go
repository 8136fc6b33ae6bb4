package core

import (
	"embed"
	"io/fs"
)

// Sources holds the runtime files shipped into generated projects.
//
//go:embed config.go convert.go database.go doc.go gate.go password.go request.go response.go router.go session.go validate.go views.go
var Sources embed.FS

// SourceFiles returns the names of the shipped runtime files in lexical order.
func SourceFiles() ([]string, error) {
	entries, err := fs.ReadDir(Sources, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
