package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/member-roster/internal/adapters/storage"
	"github.com/jsamuelsen11/member-roster/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/member-roster/internal/app"
	"github.com/jsamuelsen11/member-roster/internal/domain"
	"github.com/jsamuelsen11/member-roster/internal/platform/config"
	"github.com/jsamuelsen11/member-roster/internal/platform/logging"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
	verbose   bool
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(config.DefaultDotEnvPath); err != nil {
		return nil, err
	}
	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// withService loads the config, opens the store and runs fn against a
// MemberService backed by it.
func (o *rootOptions) withService(cmd *cobra.Command, fn func(ctx context.Context, svc ports.MemberService) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if o.verbose {
		logger = logging.New(cfg.Log.Level, "text", cmd.ErrOrStderr())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	backend, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	svc := app.NewMemberService(storage.NewInstrumented(backend, cfg.Store.Driver, nil), logger)
	return classify(fn(ctx, svc))
}

// classify maps service errors to exit codes: validation failures exit 2
// with their messages, everything else exits 1.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return codeError(exitValidation, "%s", strings.Join(verr.Messages, "\n"))
	}
	return codeError(exitFailure, "%s", err)
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every member, one per line, in stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withService(cmd, func(ctx context.Context, svc ports.MemberService) error {
				members, err := svc.List(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, m := range members {
					fmt.Fprintln(out, m.Name)
				}
				return nil
			})
		},
	}
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd, func(ctx context.Context, svc ports.MemberService) error {
				m, err := svc.Create(ctx, args[0])
				if err != nil {
					return err
				}
				return notice(cmd.OutOrStdout(), "Successfully saved the new member: %s.", m.Name)
			})
		},
	}
}

func newRenameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename the member identified by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd, func(ctx context.Context, svc ports.MemberService) error {
				m, err := svc.Update(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				return notice(cmd.OutOrStdout(), "Successfully updated the member: %s.", m.Name)
			})
		},
	}
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove every entry equal to id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd, func(ctx context.Context, svc ports.MemberService) error {
				removed, err := svc.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				if removed == 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "no member named %q\n", args[0])
				}
				return notice(cmd.OutOrStdout(), "Successfully removed the member: %s.", args[0])
			})
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the Postgres schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Driver != config.StoreDriverPostgres {
				return codeError(exitFailure, "migrate requires the postgres store driver, profile %q uses %q", opts.profile, cfg.Store.Driver)
			}
			if err := postgres.Migrate(cfg.Store.DSN, direction); err != nil {
				return err
			}
			return notice(cmd.OutOrStdout(), "Migrated %s.", direction)
		},
	}

	cmd.Flags().StringVar(&direction, "direction", postgres.DirectionUp, "Migration direction: up or down")
	return cmd
}

func notice(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format+"\n", args...)
	return err
}
