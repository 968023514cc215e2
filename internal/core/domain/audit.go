package domain

import "strings"

// AuditResult gathers everything one run found.
type AuditResult struct {
	Report             *Report             `json:"report"`
	InterpreterOrphans []InterpreterOrphan `json:"interpreterOrphans"`
	BrokenServiceLinks []string            `json:"brokenServiceLinks"`
}

// VerboseRequested reports whether any raw command-line argument asks for the
// verbose dump, i.e. starts with "-v" or "--v".
func VerboseRequested(args []string) bool {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-v") || strings.HasPrefix(arg, "--v") {
			return true
		}
	}
	return false
}

// CommandOutput is the captured result of an external tool invocation.
type CommandOutput struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the tool exited with status zero.
func (o CommandOutput) Success() bool {
	return o.ExitCode == 0
}

// Lines splits stdout into lines without their terminators.
func (o CommandOutput) Lines() []string {
	text := strings.TrimSuffix(string(o.Stdout), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
