package aliasfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"gopkg.in/yaml.v3"
)

type document struct {
	Version int           `yaml:"version"`
	Aliases []alias.Alias `yaml:"aliases"`
}

func (d *document) indexOf(name string) int {
	for i, a := range d.Aliases {
		if a.Name == name {
			return i
		}
	}
	return -1
}

func (d *document) sort() {
	sort.SliceStable(d.Aliases, func(i, j int) bool { return d.Aliases[i].Name < d.Aliases[j].Name })
}

// readDocument decodes the file at path. A missing or empty file is an
// empty document; the bool reports whether the file exists.
func readDocument(path string) (document, bool, error) {
	var doc document
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, false, nil
		}
		return doc, false, fmt.Errorf("failed to read alias file %s: %w", toUserFriendlyPath(path), err)
	}
	if len(data) == 0 {
		return doc, true, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, true, nil
		}
		return document{}, true, fmt.Errorf("failed to parse alias file %s: %w", toUserFriendlyPath(path), err)
	}
	return doc, true, nil
}

// writeDocument replaces the file at path atomically.
func writeDocument(path string, doc document) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode aliases: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode aliases: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".aliases-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary alias file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write alias file %s: %w", toUserFriendlyPath(path), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync alias file %s: %w", toUserFriendlyPath(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close alias file %s: %w", toUserFriendlyPath(path), err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on alias file %s: %w", toUserFriendlyPath(path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace alias file %s: %w", toUserFriendlyPath(path), err)
	}
	return nil
}

// toUserFriendlyPath replaces the home directory prefix with ~ for messages.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
