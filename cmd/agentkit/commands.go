package agentkit

import (
	"fmt"
	"os"

	"github.com/arthur-debert/agentkit/internal/version"
	"github.com/arthur-debert/agentkit/pkg/commands/genconfig"
	"github.com/arthur-debert/agentkit/pkg/commands/install"
	"github.com/arthur-debert/agentkit/pkg/commands/list"
	"github.com/arthur-debert/agentkit/pkg/commands/status"
	"github.com/arthur-debert/agentkit/pkg/commands/toggle"
	"github.com/arthur-debert/agentkit/pkg/commands/uninstall"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"golang.org/x/term"
)

func (a *app) newInstallCmd() *cobra.Command {
	var (
		scopes    scopeFlags
		tgts      []string
		noSymlink bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}

			chosen, err := scopes.resolve(s.prompter, "install", true)
			if err != nil {
				return err
			}

			ids := tgts
			if len(ids) == 0 {
				ids = s.settings.Install.Targets
			}
			resolved, err := targets.Resolve(ids)
			if err != nil {
				return err
			}

			log.Info().
				Interface("scopes", chosen).
				Strs("targets", ids).
				Bool("dryRun", dryRun).
				Msg("Installing")

			result, err := install.Install(s.ctx, install.InstallOptions{
				Scopes:  chosen,
				Targets: resolved,
				Symlink: s.settings.Install.Symlink && !noSymlink,
				DryRun:  dryRun,
			})
			if result != nil {
				if rerr := s.renderer.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	scopes.register(cmd, true)
	cmd.Flags().StringSliceVarP(&tgts, "target", "t", nil, MsgFlagTarget)
	cmd.Flags().BoolVar(&noSymlink, "no-symlink", false, MsgFlagNoSymlink)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	_ = cmd.RegisterFlagCompletionFunc("target", targetCompletion)

	return cmd
}

func (a *app) newUninstallCmd() *cobra.Command {
	var (
		scopes scopeFlags
		tgts   []string
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}

			chosen, err := scopes.resolve(s.prompter, "uninstall", true)
			if err != nil {
				return err
			}

			var resolved []targets.Target
			if len(tgts) > 0 {
				if resolved, err = targets.Resolve(tgts); err != nil {
					return err
				}
			} else {
				available := uninstall.InstalledTargets(s.ctx, chosen)
				if len(available) == 0 {
					return s.renderer.RenderMessage(fmt.Sprintf(MsgNothingInstalled, scopeNames(chosen)))
				}
				if resolved, err = s.prompter.ChooseTargets("uninstall", available, targetIDs(available)); err != nil {
					return err
				}
				if !yes && !dryRun {
					ok, err := s.prompter.Confirm(fmt.Sprintf(MsgConfirmUninstall, targetNames(resolved), scopeNames(chosen)))
					if err != nil {
						return err
					}
					if !ok {
						return errors.New(errors.ErrCancelled, "uninstall cancelled")
					}
				}
			}

			result, err := uninstall.Uninstall(s.ctx, uninstall.UninstallOptions{
				Scopes:  chosen,
				Targets: resolved,
				DryRun:  dryRun,
			})
			if result != nil {
				if rerr := s.renderer.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	scopes.register(cmd, true)
	cmd.Flags().StringSliceVarP(&tgts, "target", "t", nil, MsgFlagTarget)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	_ = cmd.RegisterFlagCompletionFunc("target", targetCompletion)

	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	var scopes scopeFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			chosen, err := readScopes(&scopes)
			if err != nil {
				return err
			}
			result, err := list.List(s.ctx, list.ListOptions{Scopes: chosen})
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(result)
		},
	}

	scopes.register(cmd, false)
	return cmd
}

func (a *app) newStatusCmd() *cobra.Command {
	var (
		scopes scopeFlags
		tgts   []string
	)

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			chosen, err := readScopes(&scopes)
			if err != nil {
				return err
			}
			var resolved []targets.Target
			if len(tgts) > 0 {
				if resolved, err = targets.Resolve(tgts); err != nil {
					return err
				}
			}
			result, err := status.Status(s.ctx, status.StatusOptions{Scopes: chosen, Targets: resolved})
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(result)
		},
	}

	scopes.register(cmd, false)
	cmd.Flags().StringSliceVarP(&tgts, "target", "t", nil, MsgFlagTarget)
	_ = cmd.RegisterFlagCompletionFunc("target", targetCompletion)
	return cmd
}

// readScopes is the read-only verbs' scope choice: flags, or both scopes
func readScopes(f *scopeFlags) ([]types.Scope, error) {
	scopes, err := f.set()
	if err != nil || scopes != nil {
		return scopes, err
	}
	return types.AllScopes, nil
}

func (a *app) newToggleCmd(enable bool) *cobra.Command {
	var (
		scopes   scopeFlags
		typeName string
		all      bool
	)

	opts := toggle.ToggleOptions{Enable: enable}
	short := MsgDisableShort
	if enable {
		short = MsgEnableShort
	}

	cmd := &cobra.Command{
		Use:     opts.Verb() + " [name...]",
		Short:   short,
		Long:    MsgToggleLong,
		Example: MsgToggleExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrNameAndAll)
			}

			s, err := a.session(cmd)
			if err != nil {
				return err
			}

			chosen, err := scopes.resolve(s.prompter, opts.Verb(), false)
			if err != nil {
				return err
			}
			scope := chosen[0]

			var category types.Category
			if typeName != "" {
				if category, err = types.ParseCategory(typeName); err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid --type")
				}
			}

			run := opts
			run.Scope = scope
			run.All = all

			switch {
			case all:
			case len(args) > 0:
				for _, raw := range args {
					item, err := toggle.Resolve(s.ctx, scope, raw, category)
					if err != nil {
						return err
					}
					run.Items = append(run.Items, item)
				}
			default:
				candidates, err := toggle.Candidates(s.ctx, scope, enable)
				if err != nil {
					return err
				}
				if len(candidates) == 0 {
					return s.renderer.RenderMessage(fmt.Sprintf(MsgNothingToToggle, opts.Verb(), scope))
				}
				picked, err := s.prompter.SelectItems(opts.Verb(), candidates)
				if err != nil {
					return err
				}
				for _, item := range picked {
					run.Items = append(run.Items, toggle.Item{Category: item.Category, Name: item.Name})
				}
			}

			logger := logging.GetLogger("cmd.toggle")
			logger.Info().
				Str("verb", opts.Verb()).
				Str("scope", string(scope)).
				Int("items", len(run.Items)).
				Bool("all", all).
				Msg("Toggling")

			result, err := toggle.Toggle(s.ctx, run)
			if result != nil {
				if rerr := s.renderer.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	scopes.register(cmd, false)
	cmd.Flags().StringVar(&typeName, "type", "", MsgFlagType)
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagToggleAll)
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"agent", "command", "skill"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (a *app) newPostinstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "postinstall",
		Short:  MsgPostinstallShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := ui.DetectFormat(cmd.OutOrStdout())
			width := 0
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				if w, _, err := term.GetSize(int(f.Fd())); err == nil {
					width = w
				}
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(MsgPostinstall, format, width))
			return err
		},
	}
}

func (a *app) newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.paths()
			if err != nil {
				return err
			}
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Path:  p.SettingsPath(),
				Write: write,
			})
			if err != nil {
				return err
			}
			s, err := a.settings(p)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd, s)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "agentkit version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "AGENTKIT",
				Section: "1",
			}
			if err := doc.GenManTree(root, header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}

func targetCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return targets.IDs(), cobra.ShellCompDirectiveNoFileComp
}

func targetIDs(tgts []targets.Target) []string {
	ids := make([]string, 0, len(tgts))
	for _, t := range tgts {
		ids = append(ids, t.ID)
	}
	return ids
}

func targetNames(tgts []targets.Target) string {
	s := ""
	for i, t := range tgts {
		if i > 0 {
			s += ", "
		}
		s += t.DisplayName
	}
	return s
}

func scopeNames(scopes []types.Scope) string {
	if len(scopes) == len(types.AllScopes) {
		return "global and project"
	}
	if len(scopes) == 0 {
		return ""
	}
	return string(scopes[0])
}
