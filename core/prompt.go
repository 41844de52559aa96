package core

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"

	"github.com/fatih/color"
	"github.com/josephlewis42/catfish/core/config"
	"golang.org/x/term"
)

// unknownIdentity is shown when the user or host can't be determined.
const unknownIdentity = "unknown"

// PromptInfo is what the prompt shows.
type PromptInfo struct {
	Username string
	Hostname string
	Dir      string
	Home     string
}

// Prompt renders the two line prompt. The header line is printed before
// reading, the input line is handed to the line editor.
type Prompt struct {
	Config  config.Prompt
	Colored bool
}

// NewPrompt creates a prompt, resolving the color mode against out.
func NewPrompt(cfg config.Prompt, out io.Writer) *Prompt {
	return &Prompt{
		Config:  cfg,
		Colored: shouldColor(cfg.Color, out),
	}
}

func (p *Prompt) paint(s string, attr color.Attribute) string {
	c := color.New(attr)
	if p.Colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// Header renders the line above the input, e.g.
// "╭╴fish on pond in ⛩/src".
func (p *Prompt) Header(info PromptInfo) string {
	return fmt.Sprintf("%s%s on %s in %s",
		p.paint("╭╴", color.FgHiMagenta),
		p.paint(orUnknown(info.Username), color.FgHiRed),
		p.paint(orUnknown(info.Hostname), color.FgHiCyan),
		p.paint(p.displayDir(info.Dir, info.Home), color.FgHiMagenta),
	)
}

// Input renders the prompt on the input line.
func (p *Prompt) Input() string {
	return p.paint("╰", color.FgHiMagenta) + p.Config.Symbol
}

func (p *Prompt) displayDir(dir, home string) string {
	if home == "" || p.Config.HomeSymbol == "" {
		return dir
	}
	home = strings.TrimSuffix(home, "/")
	switch {
	case dir == home:
		return p.Config.HomeSymbol
	case strings.HasPrefix(dir, home+"/"):
		return p.Config.HomeSymbol + strings.TrimPrefix(dir, home)
	default:
		return dir
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownIdentity
	}
	return s
}

func shouldColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor && isTerminal(out)
	}
}

type fder interface {
	Fd() uintptr
}

func isTerminal(stream interface{}) bool {
	f, ok := stream.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// currentUsername looks the user up in the environment, then the OS.
func currentUsername(getenv func(string) string) string {
	for _, key := range []string{"USER", "LOGNAME"} {
		if name := getenv(key); name != "" {
			return name
		}
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}
