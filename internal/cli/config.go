package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/errors"
	"github.com/mrz1836/bidclock/internal/tui"
)

// formRunner abstracts huh.Form for testing.
type formRunner interface {
	Run() error
}

// newSettingsForm builds the settings form. Tests replace it.
//
//nolint:gochecknoglobals // Injectable for tests
var newSettingsForm = func(v *tui.SettingsValues) formRunner {
	return tui.NewSettingsForm(v)
}

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show, create or edit the configuration",
		Long: `Manage bidclock configuration.

Settings are read, lowest precedence first, from built-in defaults, the global
file (~/.bidclock/config.yaml or $BIDCLOCK_HOME/config.yaml), the project file
(.bidclock/config.yaml), a .env file, BIDCLOCK_* environment variables and
command flags.`,
	}

	addConfigShowCommand(cmd, flags)
	addConfigInitCommand(cmd, flags)
	addConfigEditCommand(cmd, flags)

	root.AddCommand(cmd)
}

func addConfigShowCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
	parent.AddCommand(cmd)
}

func runConfigShow(ctx context.Context, w io.Writer, flags *GlobalFlags) error {
	cfg, err := loadConfig(ctx, GetLogger(), nil)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return tui.NewJSONOutput(w).JSON(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

type configTargetOptions struct {
	project bool
	force   bool
}

// targetPath returns the project or global config file path.
func (o configTargetOptions) targetPath() (string, error) {
	if o.project {
		return config.ProjectConfigPath(), nil
	}
	return config.GlobalConfigPath()
}

func addConfigInitCommand(parent *cobra.Command, flags *GlobalFlags) {
	opts := &configTargetOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.project, "project", false, "write .bidclock/config.yaml in the current directory")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing file")

	parent.AddCommand(cmd)
}

func runConfigInit(w io.Writer, flags *GlobalFlags, opts *configTargetOptions) error {
	path, err := opts.targetPath()
	if err != nil {
		return err
	}

	if err := config.Save(path, config.DefaultConfig(), opts.force); err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("path", path).Msg("config written")
	out := tui.NewOutput(w, flags.Output)
	out.Success("Wrote " + path)
	return nil
}

func addConfigEditCommand(parent *cobra.Command, flags *GlobalFlags) {
	opts := &configTargetOptions{force: true}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the game settings interactively",
		Long: `Edit the game settings in a form and save them.

The form starts from the values in the target file, or the defaults when the
file does not exist yet. Other settings in the file are preserved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigEdit(cmd.Context(), cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.project, "project", false, "edit .bidclock/config.yaml in the current directory")

	parent.AddCommand(cmd)
}

func runConfigEdit(ctx context.Context, w io.Writer, flags *GlobalFlags, opts *configTargetOptions) error {
	if !isInteractive() {
		return errors.NewExitCode2Error(errors.ErrInteractiveRequired)
	}

	path, err := opts.targetPath()
	if err != nil {
		return err
	}

	cfg, err := loadTarget(ctx, path, opts.project)
	if err != nil {
		return err
	}

	values := tui.SettingsFromGame(cfg.Game)
	if err := newSettingsForm(&values).Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return errors.ErrOperationCanceled
		}
		return fmt.Errorf("settings form failed: %w", err)
	}

	game, err := values.ToGame()
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	cfg.Game = game

	if err := config.Save(path, cfg, true); err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("path", path).Msg("game settings saved")
	tui.NewOutput(w, flags.Output).Success("Saved game settings to " + path)
	return nil
}

// loadTarget reads a single config file on top of the defaults. The other
// file layer and the .env file are skipped so saving does not copy them in.
func loadTarget(ctx context.Context, path string, project bool) (*config.Config, error) {
	if project {
		return config.LoadFromPaths(ctx, path, "")
	}
	return config.LoadFromPaths(ctx, "", path)
}
