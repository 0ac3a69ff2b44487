package main

import (
	"os"
	"strings"

	"datepicker/internal/cli"
)

// isDateText reports whether s looks like typed date text rather than a
// subcommand name. Subcommands never start with a digit.
func isDateText(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func rewriteDirectParseArgs(argv []string) []string {
	// Convenience: `datepicker 30.4.2019` works like `datepicker parse 30.4.2019`.
	//
	// Persistent flags may come first (`datepicker --locale de 30.4.2019`), so
	// find the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--locale":     true,
		"--format":     true,
		"--log-level":  true,
		"--log-format": true,
	}

	insertAt := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "parse")
		out = append(out, argv[i:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isDateText(argv[i+1]) {
				return insertAt(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}
		if isDateText(a) {
			return insertAt(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectParseArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
