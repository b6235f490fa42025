package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

func fzfLine(a alias.Alias) string {
	return fmt.Sprintf("%s\t%s", a.Name, a.Destination)
}

func selectAliasesViaFZF(candidates []alias.Alias) ([]alias.Alias, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, ErrFZFNotFound
	}

	if len(candidates) == 0 {
		return []alias.Alias{}, nil
	}

	var inputBuffer bytes.Buffer
	candidateMap := make(map[string]alias.Alias)

	for _, c := range candidates {
		// Raw lines map selections back without parsing.
		rawLine := fzfLine(c)
		candidateMap[rawLine] = c
		inputBuffer.WriteString(rawLine + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--multi", "--ansi", "--delimiter", "\t", "--tabstop", "12",
		"--prompt", ui.PromptColor("Select aliases (TAB to multi-select, Enter to confirm) > "))
	fzfCmd.Stdin = &inputBuffer

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = &errBuffer

	err = fzfCmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			// Exit code 1 with no output means nothing matched.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return []alias.Alias{}, nil
			}
		}
		return nil, fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	return mapFZFSelection(outBuffer.String(), candidateMap), nil
}

func mapFZFSelection(output string, candidateMap map[string]alias.Alias) []alias.Alias {
	var chosen []alias.Alias
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if selected, ok := candidateMap[line]; ok {
			chosen = append(chosen, selected)
		} else {
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: fzf selected an unknown line: %s", line)))
		}
	}
	return chosen
}

func displayCandidatesForNumericSelection(out io.Writer, candidates []alias.Alias) {
	fmt.Fprintln(out, ui.PromptColor("Select aliases to add (e.g., 1,3-5, or 'all', 'none'):"))
	for i, c := range candidates {
		fmt.Fprintf(out, "%d. %s -> %s\n",
			i+1,
			ui.AliasNameColor(c.Name),
			ui.AliasDestColor(c.Destination))
	}
}

func parseNumericSelectionInput(input string, candidateCount int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	if trimmedInput == "none" || trimmedInput == "" {
		return []int{}, nil
	}
	if trimmedInput == "all" {
		indices := make([]int, candidateCount)
		for i := 0; i < candidateCount; i++ {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > candidateCount {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", candidateCount, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1)
			}
		} else {
			num, err := strconv.Atoi(part)
			if err != nil || num <= 0 || num > candidateCount {
				return nil, fmt.Errorf("invalid number (max %d): %s", candidateCount, part)
			}
			selections = append(selections, num-1)
		}
	}

	seen := make(map[int]bool)
	unique := []int{}
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}

func selectAliasesNumerically(in *bufio.Reader, out io.Writer, candidates []alias.Alias) ([]alias.Alias, error) {
	if len(candidates) == 0 {
		return []alias.Alias{}, nil
	}

	displayCandidatesForNumericSelection(out, candidates)
	fmt.Fprint(out, ui.PromptColor("Your choice: "))
	input, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	selectedIndices, err := parseNumericSelectionInput(input, len(candidates))
	if err != nil {
		return nil, fmt.Errorf("invalid selection input: %w", err)
	}

	chosen := make([]alias.Alias, 0, len(selectedIndices))
	for _, idx := range selectedIndices {
		chosen = append(chosen, candidates[idx])
	}
	return chosen, nil
}

// confirm prints prompt and reports whether the reply was yes or y.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	return confirmFrom(bufio.NewReader(in), out, prompt)
}

func confirmFrom(in *bufio.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, ui.PromptColor(prompt))
	input, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "yes" || input == "y", nil
}
