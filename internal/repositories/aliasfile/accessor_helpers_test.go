package aliasfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

func TestToUserFriendlyPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("home directory not available")
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "home itself", path: home, want: "~"},
		{name: "inside home", path: filepath.Join(home, ".aliasbar", "aliases.yaml"), want: filepath.Join("~", ".aliasbar", "aliases.yaml")},
		{name: "outside home", path: "/etc/aliasbar/aliases.yaml", want: "/etc/aliasbar/aliases.yaml"},
		{name: "sibling with shared prefix", path: home + "-other/file", want: home + "-other/file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.path); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDocument_IndexOfAndSort(t *testing.T) {
	doc := document{Aliases: nil}
	if doc.indexOf("gh") != -1 {
		t.Error("indexOf on empty document should be -1")
	}
	doc.Aliases = append(doc.Aliases,
		aliasOf("yt", "https://youtube.com"),
		aliasOf("gh", "https://github.com"),
	)
	doc.sort()
	if doc.Aliases[0].Name != "gh" || doc.indexOf("yt") != 1 {
		t.Errorf("sorted aliases = %v", doc.Aliases)
	}
}

func aliasOf(name, dest string) alias.Alias {
	return alias.Alias{Name: name, Destination: dest}
}
