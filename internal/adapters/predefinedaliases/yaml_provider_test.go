package predefinedaliases

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("")

	if err != nil {
		t.Errorf("NewYAMLProvider() unexpected error = %v", err)
	}
	if provider == nil {
		t.Fatalf("NewYAMLProvider() expected non-nil provider, got nil")
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}
}

func TestYAMLProvider_BundledDefaults(t *testing.T) {
	provider, _ := NewYAMLProvider("")

	aliases, err := provider.GetPredefinedAliases()
	if err != nil {
		t.Fatalf("GetPredefinedAliases() unexpected error = %v", err)
	}
	if len(aliases) == 0 {
		t.Fatal("GetPredefinedAliases() returned no bundled aliases")
	}
	for _, a := range aliases {
		if !a.Valid() {
			t.Errorf("bundled alias %#v is not valid", a)
		}
	}
}

func TestYAMLProvider_GetPredefinedAliases(t *testing.T) {
	validAliasesYAML := `
- alias: gh
  destination: https://github.com
- alias: yt
  destination: https://youtube.com
`
	expectedValidAliases := []alias.Alias{
		{Name: "gh", Destination: "https://github.com"},
		{Name: "yt", Destination: "https://youtube.com"},
	}

	malformedContentWithExtraFieldYAML := `
- alias: gh
  destination: https://github.com
  command: "unknown fields are rejected"
`
	invalidYAMLStructure := `alias: gh destination: https://github.com`

	// Swap the embedded list so the empty-path cases do not depend on the bundled file.
	originalEmbeddedData := embeddedPredefinedAliases

	tests := []struct {
		name                string
		content             []byte
		fromFile            bool
		wantAliases         []alias.Alias
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "embedded content is nil",
			content:     nil,
			wantAliases: []alias.Alias{},
		},
		{
			name:        "embedded content is an empty YAML list",
			content:     []byte(`[]`),
			wantAliases: []alias.Alias{},
		},
		{
			name:        "embedded content only has comments",
			content:     []byte("# nothing here\n"),
			wantAliases: []alias.Alias{},
		},
		{
			name:        "valid aliases embedded",
			content:     []byte(validAliasesYAML),
			wantAliases: expectedValidAliases,
		},
		{
			name:                "malformed embedded content",
			content:             []byte(malformedContentWithExtraFieldYAML),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal embedded predefined aliases",
		},
		{
			name:        "valid aliases from file",
			content:     []byte(validAliasesYAML),
			fromFile:    true,
			wantAliases: expectedValidAliases,
		},
		{
			name:        "empty file",
			content:     []byte{},
			fromFile:    true,
			wantAliases: []alias.Alias{},
		},
		{
			name:                "invalid YAML structure in file",
			content:             []byte(invalidYAMLStructure),
			fromFile:            true,
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.fromFile {
				path = filepath.Join(t.TempDir(), "predefined.yaml")
				if err := os.WriteFile(path, tt.content, 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			} else {
				embeddedPredefinedAliases = tt.content
				t.Cleanup(func() {
					embeddedPredefinedAliases = originalEmbeddedData
				})
			}

			provider, _ := NewYAMLProvider(path)
			aliases, err := provider.GetPredefinedAliases()

			if (err != nil) != tt.wantErr {
				t.Errorf("GetPredefinedAliases() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetPredefinedAliases() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if aliases != nil {
					t.Errorf("GetPredefinedAliases() expected nil aliases on error, got %#v", aliases)
				}
				return
			}
			if !reflect.DeepEqual(aliases, tt.wantAliases) {
				t.Errorf("GetPredefinedAliases() aliases = %#v, want %#v", aliases, tt.wantAliases)
			}
		})
	}
}

func TestYAMLProvider_MissingFile(t *testing.T) {
	provider, _ := NewYAMLProvider(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	aliases, err := provider.GetPredefinedAliases()
	if err != nil {
		t.Fatalf("GetPredefinedAliases() unexpected error = %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("GetPredefinedAliases() = %#v, want empty", aliases)
	}
}
