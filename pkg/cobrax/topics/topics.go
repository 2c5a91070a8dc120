// Package topics adds topic pages to the Cobra help command, so that
// `agentkit help scopes` prints a page that is not tied to any command.
//
// Topics are markdown or text files read from an fs.FS, usually an embedded
// directory.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Topic is a single help page
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Options configures the Manager
type Options struct {
	// Extensions considered as topics. Defaults to .md and .txt
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer
	Renderer Renderer
}

// Manager holds the topics found in a filesystem
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Load reads every topic file below root in fsys
func Load(fsys fs.FS, root string, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(data)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	log.Trace().Int("count", len(m.topics)).Msg("Help topics loaded")
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get returns a topic by name. Flag-style names (--dry-run) match
// option-dry-run.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics["option-"+name]
	return t, ok
}

// Names returns every topic name, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes a topic to w
func (m *Manager) Render(w io.Writer, t *Topic) error {
	_, err := io.WriteString(w, m.renderer.Render(t.Content, t.Ext))
	return err
}

// WriteIndex lists the topics, option topics last
func (m *Manager) WriteIndex(w io.Writer, program string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, "option-"); ok {
			options = append(options, opt)
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Install replaces the root command's help command with one that also
// knows about topics
func (m *Manager) Install(rootCmd *cobra.Command) {
	originalHelp := rootCmd.HelpFunc()
	program := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				originalHelp(rootCmd, nil)
				return nil
			}
			if args[0] == "topics" {
				m.WriteIndex(cmd.OutOrStdout(), program)
				return nil
			}
			if t, ok := m.Get(args[0]); ok {
				return m.Render(cmd.OutOrStdout(), t)
			}
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				originalHelp(rootCmd, args)
				return nil
			}
			originalHelp(target, args)
			return nil
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)
}
