package execedit

import (
	"fmt"
	"os"
	"strings"
)

// BuildTemplate renders the commit-message template shown to the
// configured editor during "amend --edit": the existing message,
// followed by a comment block explaining the sanitize rules and
// naming the branch being amended, if any.
func BuildTemplate(existing, branch string) string {
	var b strings.Builder
	fmt.Fprintln(&b, existing)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "# Please enter the commit message for your changes. Lines starting")
	fmt.Fprintln(&b, "# with '#' will be ignored, and an empty message aborts the commit.")
	if branch != "" {
		fmt.Fprintln(&b, "#")
		fmt.Fprintf(&b, "# On branch %s\n", branch)
	}
	return b.String()
}

// Sanitize drops comment lines (those whose first non-blank character
// is '#') from raw and trims surrounding whitespace.
func Sanitize(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// EditMessage opens editCmd on a temporary file seeded with template,
// then returns the sanitized result. The caller decides what an empty
// result means (aborting the operation is the caller's call, not
// this package's).
func EditMessage(editCmd, template string) (string, error) {
	f, err := os.CreateTemp("", "*.COMMIT_EDITMSG")
	if err != nil {
		return "", fmt.Errorf("create edit buffer: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(template); err != nil {
		f.Close()
		return "", fmt.Errorf("write edit buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write edit buffer: %w", err)
	}

	if err := Command(editCmd, path).Run(); err != nil {
		return "", fmt.Errorf("run editor: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edit buffer: %w", err)
	}
	return Sanitize(string(edited)), nil
}
