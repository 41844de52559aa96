package shell

import "strings"

// PipeSeparator splits a line into invocations. A bare "|" without the
// surrounding spaces is an ordinary character.
const PipeSeparator = " | "

// Kind is the resolved meaning of an invocation's command name.
type Kind int

const (
	// KindExternal runs a program found on the search path.
	KindExternal Kind = iota
	// KindCd is the directory-change builtin.
	KindCd
	// KindExit terminates the shell.
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindCd:
		return "cd"
	case KindExit:
		return "exit"
	default:
		return "external"
	}
}

// Builtins maps builtin names to their kinds.
var Builtins = map[string]Kind{
	"cd":   KindCd,
	"exit": KindExit,
}

// Invocation is one command of a pipeline.
type Invocation struct {
	Kind Kind
	// Name is the first whitespace delimited token, it may be empty for a
	// blank segment such as the middle of "a |  | b".
	Name string
	Args []string
}

// Argv returns the name followed by the arguments.
func (inv Invocation) Argv() []string {
	return append([]string{inv.Name}, inv.Args...)
}

// Pipeline is an ordered chain of invocations, each one's stdout feeding the
// next one's stdin.
type Pipeline []Invocation

// Parse splits a line into a pipeline. Blank lines produce an empty pipeline.
// There is no quoting: whitespace always separates arguments.
func Parse(line string) Pipeline {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var out Pipeline
	for _, segment := range strings.Split(line, PipeSeparator) {
		out = append(out, parseInvocation(segment))
	}
	return out
}

func parseInvocation(segment string) Invocation {
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return Invocation{Kind: KindExternal}
	}

	inv := Invocation{
		Kind: Builtins[fields[0]],
		Name: fields[0],
		Args: fields[1:],
	}
	if len(inv.Args) == 0 {
		inv.Args = nil
	}
	return inv
}
