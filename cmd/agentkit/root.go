package agentkit

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/agentkit/internal/version"
	"github.com/arthur-debert/agentkit/pkg/cobrax/topics"
	"github.com/arthur-debert/agentkit/pkg/commands"
	"github.com/arthur-debert/agentkit/pkg/config"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/arthur-debert/agentkit/pkg/style"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui"
	"github.com/arthur-debert/agentkit/pkg/ui/prompt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Options replaces the collaborators the CLI would otherwise take from the
// process environment. The zero value is what main uses.
type Options struct {
	// Prompter defaults to pterm on a terminal, refusal otherwise
	Prompter prompt.Prompter
	// Paths overrides resolved roots (home, cwd, data and config dirs)
	Paths paths.Options
}

// app holds the global flags and builds per-command collaborators
type app struct {
	opts Options

	verbosity int
	format    string
	source    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with injected collaborators
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	initTemplateFormatting()

	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:     "agentkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: a.verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   !ui.ColorEnabled(cmd.ErrOrStderr()),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.source, "source", "", MsgFlagSource)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newInstallCmd())
	rootCmd.AddCommand(a.newUninstallCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newStatusCmd())
	rootCmd.AddCommand(a.newToggleCmd(true))
	rootCmd.AddCommand(a.newToggleCmd(false))
	rootCmd.AddCommand(a.newPostinstallCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds the embedded topic pages to the help command. On a load
// failure the stock help command stays in place.
func installTopics(rootCmd *cobra.Command) {
	var renderer topics.Renderer = topics.PlainRenderer{}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		width, _, _ := term.GetSize(fd)
		renderer = topics.GlamourRenderer{Width: width}
	}

	tm, err := topics.Load(topicsFS, "msgs/topics", topics.Options{Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	tm.Install(rootCmd)
}

// Execute runs the command and maps its error to an exit code. A cancelled
// prompt is not a failure.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	stderr := cmd.ErrOrStderr()
	if errors.IsErrorCode(err, errors.ErrCancelled) {
		fmt.Fprintln(stderr, MsgCancelled)
		return 0
	}

	fmt.Fprintln(stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	return 1
}

func (a *app) paths() (*paths.Paths, error) {
	return paths.New(a.opts.Paths)
}

// settings loads application settings with the global flags layered on top
func (a *app) settings(p *paths.Paths) (*config.Settings, error) {
	overrides := map[string]interface{}{}
	if a.source != "" {
		overrides["source.dir"] = a.source
	}
	if a.format != "" {
		overrides["output.format"] = a.format
	}
	return config.Load(p.SettingsPath(), overrides)
}

// session is everything a command needs, resolved once per invocation
type session struct {
	ctx      *commands.Context
	settings *config.Settings
	renderer ui.Renderer
	prompter prompt.Prompter
	out      io.Writer
}

func (a *app) session(cmd *cobra.Command) (*session, error) {
	p, err := a.paths()
	if err != nil {
		return nil, err
	}
	s, err := a.settings(p)
	if err != nil {
		return nil, err
	}
	ctx, err := commands.NewContext(commands.ContextOptions{Paths: p, SourceDir: s.Source.Dir})
	if err != nil {
		return nil, err
	}
	renderer, err := a.renderer(cmd, s)
	if err != nil {
		return nil, err
	}
	return &session{
		ctx:      ctx,
		settings: s,
		renderer: renderer,
		prompter: a.prompter(),
		out:      cmd.OutOrStdout(),
	}, nil
}

func (a *app) renderer(cmd *cobra.Command, s *config.Settings) (ui.Renderer, error) {
	format, err := ui.ParseFormat(s.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// prompter returns the injected Prompter, pterm when stdin is a terminal,
// and a Prompter that refuses every question otherwise
func (a *app) prompter() prompt.Prompter {
	if a.opts.Prompter != nil {
		return a.opts.Prompter
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return prompt.NewInteractive()
	}
	return prompt.NewNonInteractive()
}

// scopeFlags are the --global/--project/--all flags shared by most verbs
type scopeFlags struct {
	global  bool
	project bool
	all     bool
}

func (f *scopeFlags) register(cmd *cobra.Command, withAll bool) {
	cmd.Flags().BoolVarP(&f.global, "global", "g", false, MsgFlagGlobal)
	cmd.Flags().BoolVarP(&f.project, "project", "p", false, MsgFlagProject)
	if withAll {
		cmd.Flags().BoolVarP(&f.all, "all", "a", false, MsgFlagAll)
	}
}

// set returns the scopes named by flags, or nil when none was given
func (f *scopeFlags) set() ([]types.Scope, error) {
	n := 0
	for _, b := range []bool{f.global, f.project, f.all} {
		if b {
			n++
		}
	}
	switch {
	case n > 1:
		return nil, errors.New(errors.ErrInvalidInput, MsgErrScopeFlags)
	case f.all:
		return types.AllScopes, nil
	case f.global:
		return []types.Scope{types.ScopeGlobal}, nil
	case f.project:
		return []types.Scope{types.ScopeProject}, nil
	default:
		return nil, nil
	}
}

// resolve returns the flagged scopes or asks for them
func (f *scopeFlags) resolve(p prompt.Prompter, verb string, allowBoth bool) ([]types.Scope, error) {
	scopes, err := f.set()
	if err != nil || scopes != nil {
		return scopes, err
	}
	return p.ChooseScope(verb, allowBoth)
}
