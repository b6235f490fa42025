package cli

import (
	"bufio"
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

func TestParseNumericSelectionInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		want    []int
		wantErr bool
	}{
		{name: "none", input: "none", count: 3, want: []int{}},
		{name: "empty line selects nothing", input: "\n", count: 3, want: []int{}},
		{name: "all", input: "ALL\n", count: 3, want: []int{0, 1, 2}},
		{name: "all with no candidates", input: "all", count: 0, want: []int{}},
		{name: "single numbers", input: "1,3", count: 3, want: []int{0, 2}},
		{name: "range", input: "2-4", count: 5, want: []int{1, 2, 3}},
		{name: "mixed with spaces", input: " 1 , 3-4 ", count: 5, want: []int{0, 2, 3}},
		{name: "duplicates collapse in first-seen order", input: "3,1-3", count: 3, want: []int{2, 0, 1}},
		{name: "trailing comma ignored", input: "1,", count: 2, want: []int{0}},
		{name: "zero", input: "0", count: 3, wantErr: true},
		{name: "out of range number", input: "4", count: 3, wantErr: true},
		{name: "reversed range", input: "3-1", count: 3, wantErr: true},
		{name: "open range", input: "2-", count: 3, wantErr: true},
		{name: "range past end", input: "2-9", count: 3, wantErr: true},
		{name: "not a number", input: "two", count: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNumericSelectionInput(tt.input, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNumericSelectionInput(%q, %d) error = %v, wantErr %v", tt.input, tt.count, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseNumericSelectionInput(%q, %d) = %v, want %v", tt.input, tt.count, got, tt.want)
			}
		})
	}
}

func TestSelectAliasesNumerically(t *testing.T) {
	candidates := []alias.Alias{
		{Name: "gh", Destination: "https://github.com"},
		{Name: "hn", Destination: "https://news.ycombinator.com"},
		{Name: "yt", Destination: "https://www.youtube.com"},
	}

	t.Run("returns chosen candidates", func(t *testing.T) {
		var out bytes.Buffer
		got, err := selectAliasesNumerically(bufio.NewReader(strings.NewReader("1,3\n")), &out, candidates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []alias.Alias{candidates[0], candidates[2]}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if !strings.Contains(out.String(), "https://news.ycombinator.com") {
			t.Errorf("expected candidate listing in output, got %q", out.String())
		}
	})

	t.Run("accepts input without trailing newline", func(t *testing.T) {
		got, err := selectAliasesNumerically(bufio.NewReader(strings.NewReader("2")), &bytes.Buffer{}, candidates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "hn" {
			t.Errorf("got %v, want [hn]", got)
		}
	})

	t.Run("closed input is an error", func(t *testing.T) {
		if _, err := selectAliasesNumerically(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{}, candidates); err == nil {
			t.Error("expected error on empty input stream")
		}
	})

	t.Run("invalid selection is an error", func(t *testing.T) {
		if _, err := selectAliasesNumerically(bufio.NewReader(strings.NewReader("7\n")), &bytes.Buffer{}, candidates); err == nil {
			t.Error("expected error for out-of-range selection")
		}
	})
}

func TestMapFZFSelection(t *testing.T) {
	gh := alias.Alias{Name: "gh", Destination: "https://github.com"}
	yt := alias.Alias{Name: "yt", Destination: "https://www.youtube.com"}
	candidateMap := map[string]alias.Alias{fzfLine(gh): gh, fzfLine(yt): yt}

	got := mapFZFSelection(fzfLine(yt)+"\n"+fzfLine(gh)+"\n", candidateMap)
	want := []alias.Alias{yt, gh}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mapFZFSelection() = %v, want %v", got, want)
	}

	if got := mapFZFSelection("\n", candidateMap); len(got) != 0 {
		t.Errorf("mapFZFSelection(empty) = %v, want none", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "yes\n", want: true},
		{input: "Y\n", want: true},
		{input: "no\n", want: false},
		{input: "\n", want: false},
		{input: "y", want: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			got, err := confirm(strings.NewReader(tt.input), &bytes.Buffer{}, "sure? ")
			if (err != nil) != tt.wantErr {
				t.Fatalf("confirm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
