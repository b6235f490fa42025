package predefinedaliases

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed predefined_aliases.yaml
var embeddedPredefinedAliases []byte

// YAMLProvider implements the PredefinedAliasProvider interface by reading
// aliases from a YAML list, either a user file or the bundled defaults.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// An empty filePath selects the aliases embedded in the binary.
func NewYAMLProvider(filePath string) (ports.PredefinedAliasProvider, error) {
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPredefinedAliases reads and parses the configured alias list.
// A missing or empty file yields an empty list and no error.
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	source := "embedded predefined aliases"
	content := embeddedPredefinedAliases

	if p.filePath != "" {
		source = p.filePath
		data, err := os.ReadFile(p.filePath)
		if err != nil {
			if os.IsNotExist(err) {
				return []alias.Alias{}, nil
			}
			return nil, fmt.Errorf("failed to read predefined aliases file %s: %w", p.filePath, err)
		}
		content = data
	}

	return decodeAliases(content, source)
}

func decodeAliases(content []byte, source string) ([]alias.Alias, error) {
	predefined := []alias.Alias{}
	if len(content) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(&predefined); err != nil {
		// A document holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal %s: %w", source, err)
	}
	return predefined, nil
}
