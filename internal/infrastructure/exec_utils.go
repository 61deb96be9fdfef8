package infrastructure

import "strings"

// shellSpecial lists the characters that force quoting when a command line
// is rendered for display.
const shellSpecial = " \t\n\r'\"$`\\!*?[](){}|;<>&~#%"

// quoteArg renders one argument for display in a shell-style command line.
// This is for logging only; exec.Command never goes through a shell.
func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, shellSpecial) {
		return s
	}

	// Single-quote the argument; embedded single quotes close the quote,
	// escape, and reopen.
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// DisplayCommand renders a binary and its arguments as a copy-pasteable
// command line for diagnostics.
func DisplayCommand(binary string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(binary))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}
