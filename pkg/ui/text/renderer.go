// Package text provides plain text output without any styling.
//
// The layout lives here; the terminal renderer reuses it with a Styler that
// adds colors.
package text

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/commands/genconfig"
	"github.com/arthur-debert/agentkit/pkg/commands/install"
	"github.com/arthur-debert/agentkit/pkg/commands/list"
	"github.com/arthur-debert/agentkit/pkg/commands/status"
	"github.com/arthur-debert/agentkit/pkg/commands/toggle"
	"github.com/arthur-debert/agentkit/pkg/commands/uninstall"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Styler decorates the pieces of a rendered line
type Styler interface {
	Title(s string) string
	Muted(s string) string
	Path(s string) string
	Status(status types.SyncStatus) string
	Name(category types.Category, s string) string
	Indicator(enabled, broken bool) string
	Error(s string) string
}

type plainStyler struct{}

func (plainStyler) Title(s string) string { return s }
func (plainStyler) Muted(s string) string { return s }
func (plainStyler) Path(s string) string { return s }
func (plainStyler) Name(_ types.Category, s string) string { return s }
func (plainStyler) Error(s string) string { return s }
func (plainStyler) Status(status types.SyncStatus) string { return fmt.Sprintf("%-8s", status) }
func (plainStyler) Indicator(enabled, broken bool) string {
	switch {
	case broken:
		return "[!]"
	case enabled:
		return "[x]"
	default:
		return "[ ]"
	}
}

// Plain returns the Styler that leaves text untouched
func Plain() Styler {
	return plainStyler{}
}

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	styler Styler
	b      strings.Builder
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return NewStyled(output, Plain()), nil
}

// NewStyled creates a text renderer that decorates its output with s
func NewStyled(output io.Writer, s Styler) *Renderer {
	return &Renderer{output: output, styler: s}
}

// RenderResult renders any command result as text
func (r *Renderer) RenderResult(result interface{}) error {
	r.b.Reset()
	switch v := result.(type) {
	case *install.InstallResult:
		for _, tr := range v.Targets {
			r.sync("Install", tr.Scope, tr.Target, tr.Results, tr.Tally)
		}
		r.summary(v.Tally, v.DryRun)
	case *uninstall.UninstallResult:
		for _, tr := range v.Targets {
			r.sync("Uninstall", tr.Scope, tr.Target, tr.Results, tr.Tally)
		}
		r.summary(v.Tally, v.DryRun)
	case *toggle.ToggleResult:
		r.toggle(v)
	case *list.ListResult:
		r.list(v)
	case *status.StatusResult:
		r.status(v)
	case *genconfig.GenConfigResult:
		if len(v.FilesWritten) == 0 {
			r.b.WriteString(v.ConfigContent)
		}
		for _, path := range v.FilesWritten {
			r.linef("Wrote %s", r.styler.Path(path))
		}
	default:
		r.linef("%+v", result)
	}
	_, err := io.WriteString(r.output, r.b.String())
	return err
}

// RenderError renders an error as plain text. Coded errors already carry
// their code in the message.
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, r.styler.Error("Error: "+err.Error()))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) linef(format string, args ...interface{}) {
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteString("\n")
}

func targetName(id string) string {
	if t, ok := targets.Get(id); ok {
		return t.DisplayName
	}
	return id
}

// displayPath shows item results as category/base and everything else in full
func displayPath(res types.Result) string {
	if res.Category != "" {
		return string(res.Category) + "/" + filepath.Base(res.Path)
	}
	return res.Path
}

func (r *Renderer) sync(verb string, scope types.Scope, target string, results []types.Result, tally types.Tally) {
	r.linef("%s %s", r.styler.Title(verb+" "+targetName(target)), r.styler.Muted("("+string(scope)+")"))
	for _, res := range results {
		// directory bookkeeping is only worth a line when it failed
		if res.Category == "" && res.Status != types.StatusError {
			continue
		}
		r.result(res)
	}
	r.linef("  %s", r.styler.Muted(tally.String()))
	r.b.WriteString("\n")
}

func (r *Renderer) result(res types.Result) {
	line := fmt.Sprintf("  %s %s", r.styler.Status(res.Status), displayPath(res))
	if res.Target != "" {
		line += " -> " + r.styler.Path(res.Target)
	}
	if res.Message != "" {
		msg := res.Message
		if res.Status == types.StatusError {
			msg = r.styler.Error(msg)
		} else {
			msg = r.styler.Muted(msg)
		}
		line += "  " + msg
	}
	r.linef("%s", line)
}

func (r *Renderer) summary(tally types.Tally, dryRun bool) {
	line := "Total: " + tally.String()
	if dryRun {
		line += " (dry run, nothing changed)"
	}
	r.linef("%s", r.styler.Title(line))
}

func (r *Renderer) toggle(v *toggle.ToggleResult) {
	verb := "Disable"
	if v.Enable {
		verb = "Enable"
	}
	r.linef("%s", r.styler.Title(verb))
	if len(v.Results) == 0 {
		r.linef("  %s", r.styler.Muted("nothing to "+strings.ToLower(verb)))
	}
	for _, res := range v.Results {
		line := fmt.Sprintf("  %s %s", r.styler.Status(res.Status),
			r.styler.Name(res.Category, res.Category.Prefix()+res.Name))
		if res.Message != "" {
			msg := res.Message
			if res.Status == types.StatusError {
				msg = r.styler.Error(msg)
			} else {
				msg = r.styler.Muted(msg)
			}
			line += "  " + msg
		}
		r.linef("%s", line)
	}
	for _, res := range v.Rules {
		r.result(res)
	}
	r.linef("  %s", r.styler.Muted(v.Tally.String()))
}

func (r *Renderer) list(v *list.ListResult) {
	for i, scope := range v.Scopes {
		if i > 0 {
			r.b.WriteString("\n")
		}
		r.linef("%s", r.styler.Title(scopeTitle(scope.Scope)))
		for _, c := range scope.Categories {
			r.linef("  %s %s", r.styler.Name(c.Category, c.Category.Title()), r.styler.Muted(c.Dir))
			if len(c.Items) == 0 {
				r.linef("    %s", r.styler.Muted("none"))
				continue
			}
			for _, item := range c.Items {
				line := fmt.Sprintf("    %s %s", r.styler.Indicator(item.Enabled, item.Broken),
					r.styler.Name(item.Category, item.DisplayName()))
				var notes []string
				if !item.Enabled {
					notes = append(notes, "disabled")
				}
				if item.Broken {
					notes = append(notes, "broken link")
				}
				if !item.Known {
					notes = append(notes, "user")
				}
				if len(notes) > 0 {
					line += " " + r.styler.Muted("("+strings.Join(notes, ", ")+")")
				}
				r.linef("%s", line)
			}
		}
	}
}

func (r *Renderer) status(v *status.StatusResult) {
	r.linef("%s %s", r.styler.Muted("source:"), r.styler.Path(v.SourceDir))
	r.linef("%s %s", r.styler.Muted("config:"), r.styler.Path(v.Config))
	for _, scope := range v.Scopes {
		r.b.WriteString("\n")
		r.linef("%s", r.styler.Title(scopeTitle(scope.Scope)))
		for _, ts := range scope.Targets {
			if !ts.Supported {
				r.linef("  %-12s %s", ts.DisplayName, r.styler.Muted("not available in "+string(scope.Scope)+" scope"))
				continue
			}
			state := "not installed"
			if ts.Installed {
				state = "installed"
			}
			r.linef("  %-12s %-13s %s", ts.DisplayName, state, r.styler.Path(ts.Dir))
			if !ts.Installed && ts.Rules == status.RulesMissing {
				continue
			}
			for _, c := range ts.Counts {
				if c.Total() == 0 {
					continue
				}
				line := fmt.Sprintf("    %-13s %d enabled, %d disabled", c.Category.Title(), c.Enabled, c.Disabled)
				if c.User > 0 {
					line += fmt.Sprintf(", %d user", c.User)
				}
				if c.Broken > 0 {
					line += ", " + r.styler.Error(fmt.Sprintf("%d broken", c.Broken))
				}
				r.linef("%s", line)
			}
			if ts.RulesFile != "" {
				rules := string(ts.Rules)
				if ts.Rules != status.RulesCurrent {
					rules = r.styler.Error(rules)
				}
				r.linef("    %-13s %s %s", "Rules", rules, r.styler.Muted(ts.RulesFile))
			}
		}
		if len(scope.Dangling) > 0 {
			r.linef("  %s", r.styler.Error("Broken links"))
			for _, d := range scope.Dangling {
				r.linef("    %s -> %s %s", d.Path, d.Target, r.styler.Muted("("+d.Problem+")"))
			}
		}
	}
}

func scopeTitle(scope types.Scope) string {
	switch scope {
	case types.ScopeProject:
		return "Project"
	default:
		return "Global"
	}
}
