// Package aliasfile stores aliases in a single versioned YAML file.
package aliasfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
)

// SchemaVersion is the file format version written by this backend.
const SchemaVersion = 1

var errNotOpen = errors.New("alias file not open")

/*
Backend implements ports.AliasBackend on a YAML file. Every operation reads
the file, and every mutation rewrites it through a temporary file and a
rename, so a single record change is all-or-nothing on disk.
*/
type Backend struct {
	path string

	mu     sync.Mutex
	opened bool
}

// NewBackend creates a backend for the YAML file at path. Nothing is touched
// on disk until Open is called.
func NewBackend(path string) (*Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("alias file path cannot be empty")
	}
	return &Backend{path: path}, nil
}

var _ ports.AliasBackend = (*Backend)(nil)

// Open creates the directory and an empty version 1 file if they are absent.
func (b *Backend) Open(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opened {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", toUserFriendlyPath(filepath.Dir(b.path)), err)
	}

	doc, exists, err := readDocument(b.path)
	if err != nil {
		return err
	}
	if doc.Version > SchemaVersion {
		return fmt.Errorf("alias file %s has unsupported version %d", toUserFriendlyPath(b.path), doc.Version)
	}
	if !exists {
		if err := writeDocument(b.path, document{Version: SchemaVersion, Aliases: []alias.Alias{}}); err != nil {
			return err
		}
	}

	b.opened = true
	return nil
}

func (b *Backend) Get(_ context.Context, name string) (string, bool, error) {
	doc, err := b.load()
	if err != nil {
		return "", false, err
	}
	if i := doc.indexOf(name); i >= 0 {
		return doc.Aliases[i].Destination, true, nil
	}
	return "", false, nil
}

// GetAll returns records sorted by alias name.
func (b *Backend) GetAll(_ context.Context) ([]alias.Alias, error) {
	doc, err := b.load()
	if err != nil {
		return nil, err
	}
	doc.sort()
	return doc.Aliases, nil
}

func (b *Backend) Put(_ context.Context, a alias.Alias) error {
	return b.update(func(doc *document) {
		if i := doc.indexOf(a.Name); i >= 0 {
			doc.Aliases[i].Destination = a.Destination
			return
		}
		doc.Aliases = append(doc.Aliases, a)
	})
}

func (b *Backend) Delete(_ context.Context, name string) error {
	return b.update(func(doc *document) {
		if i := doc.indexOf(name); i >= 0 {
			doc.Aliases = append(doc.Aliases[:i], doc.Aliases[i+1:]...)
		}
	})
}

func (b *Backend) Clear(_ context.Context) error {
	return b.update(func(doc *document) {
		doc.Aliases = []alias.Alias{}
	})
}

// SchemaVersion reports the version recorded in the file. Files written
// without a version header are treated as version 1.
func (b *Backend) SchemaVersion(_ context.Context) (int, error) {
	doc, err := b.load()
	if err != nil {
		return 0, err
	}
	if doc.Version == 0 {
		return SchemaVersion, nil
	}
	return doc.Version, nil
}

func (b *Backend) load() (document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.opened {
		return document{}, errNotOpen
	}
	doc, _, err := readDocument(b.path)
	return doc, err
}

// update applies fn to the current file contents and writes the result back.
func (b *Backend) update(fn func(doc *document)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.opened {
		return errNotOpen
	}

	doc, _, err := readDocument(b.path)
	if err != nil {
		return err
	}
	fn(&doc)
	doc.Version = SchemaVersion
	doc.sort()
	return writeDocument(b.path, doc)
}
