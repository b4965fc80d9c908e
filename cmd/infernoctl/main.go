// Package main is the command-line client for Infernal Operations. Every
// command loads the configured save, runs one operation and persists it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"infernocorp/internal/app/history"
	missionapp "infernocorp/internal/app/mission"
	"infernocorp/internal/app/ports"
	"infernocorp/internal/app/session"
	"infernocorp/internal/app/status"
	"infernocorp/internal/bootstrap"
	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/platform/config"
	"infernocorp/internal/platform/logging"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type cli struct {
	out        io.Writer
	jsonOutput bool
	verbose    bool
}

// printer echoes game notices to the terminal.
type printer struct {
	out io.Writer
}

func (p printer) Notify(message string, severity game.Severity) {
	fmt.Fprintf(p.out, "[%s] %s\n", severity, message)
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:   "infernoctl",
		Short: "Run Infernal Operations from the terminal",
		Long: `infernoctl manages a daemon corporation: recruit daemons, upgrade the facility,
forge equipment and send teams on missions. Storage is selected with
INFERNO_SAVE_BACKEND (memory, bolt, sqlite, postgres).`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Print results as JSON")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log at the configured level instead of warn")

	root.AddCommand(
		c.newCmd(),
		c.statusCmd(),
		c.recruitCmd(),
		c.refreshPoolCmd(),
		c.upgradeCmd(),
		c.craftCmd(),
		c.repairCmd(),
		c.equipCmd(),
		c.unequipCmd(),
		c.missionCmd(),
		c.tickCmd(),
		c.eventCmd(),
		c.historyCmd(),
		c.infoCmd(),
	)
	return root
}

// run builds the app, hands it to fn and renders what fn returns.
func (c *cli) run(cmd *cobra.Command, fn func(ctx context.Context, a *bootstrap.App) (any, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := "warn"
	if c.verbose {
		level = cfg.LogLevel
	}
	logger := logging.New(level, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	var notifier ports.Notifier
	if !c.jsonOutput {
		notifier = printer{out: c.out}
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := bootstrap.Build(ctx, cfg, logger, notifier)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close storage", zap.Error(err))
		}
	}()

	result, err := fn(ctx, a)
	if err != nil {
		if code := game.Code(err); code != "" {
			return fmt.Errorf("%s: %w", code, err)
		}
		return err
	}
	if sysErr := a.Session.LastSystemError(); sysErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", sysErr)
	}
	return c.render(result)
}

func (c *cli) render(result any) error {
	if c.jsonOutput {
		b, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, string(b))
		return err
	}
	return renderText(c.out, result)
}

func (c *cli) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Discard the current save and start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				out, err := a.Management.NewGame(ctx)
				return out.State, err
			})
		},
	}
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show resources, roster, facility and planets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				return a.Status.Execute(ctx, status.Request{})
			})
		},
	}
}

func (c *cli) recruitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recruit <daemon-id>",
		Short: "Hire a candidate from the recruitment pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				out, err := a.Management.Recruit(ctx, args[0])
				return out.State, err
			})
		},
	}
}

func (c *cli) refreshPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-pool",
		Short: "Pay to replace the recruitment pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				out, err := a.Management.RefreshPool(ctx)
				return out.State, err
			})
		},
	}
}

func (c *cli) upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <room-id>",
		Short: "Upgrade a facility room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				return a.Management.UpgradeRoom(ctx, args[0])
			})
		},
	}
}

func (c *cli) craftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "craft <specialization>",
		Short: "Forge a new item of the given type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				return a.Management.Craft(ctx, args[0])
			})
		},
	}
}

func (c *cli) repairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair <equipment-id>",
		Short: "Restore an item to full durability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				out, err := a.Management.Repair(ctx, args[0])
				return out.State, err
			})
		},
	}
}

func (c *cli) equipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <equipment-id> <daemon-id>",
		Short: "Assign an item to an active daemon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				out, err := a.Management.Equip(ctx, args[0], args[1])
				return out.State, err
			})
		},
	}
}

func (c *cli) unequipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unequip <equipment-id>",
		Short: "Return an item to the armory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				out, err := a.Management.Unequip(ctx, args[0])
				return out.State, err
			})
		},
	}
}

func (c *cli) missionCmd() *cobra.Command {
	var previewOnly bool
	cmd := &cobra.Command{
		Use:   "mission <planet-id> <daemon-id>...",
		Short: "Select a team for a planet and run the mission",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				sel, err := a.Mission.Select(ctx, missionapp.SelectRequest{PlanetID: args[0], DaemonIDs: args[1:]})
				if err != nil {
					return nil, err
				}
				if previewOnly {
					return sel, nil
				}
				return a.Mission.Execute(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&previewOnly, "preview", false, "Only select the team and show the success chance")
	return cmd
}

func (c *cli) tickCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Advance the calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				var last any
				for i := 0; i < days; i++ {
					out, err := a.Lifecycle.Tick(ctx)
					if err != nil {
						return nil, err
					}
					last = out
				}
				return last, nil
			})
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 1, "Number of days to advance")
	return cmd
}

func (c *cli) eventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "event",
		Short: "Force a random corporate event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				return a.Lifecycle.TriggerRandomEvent(ctx)
			})
		},
	}
}

func (c *cli) historyCmd() *cobra.Command {
	var limit int
	var types []string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journal events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *bootstrap.App) (any, error) {
				return a.History.Execute(ctx, history.Request{Limit: limit, Types: types})
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultLimit, "Maximum events to read")
	cmd.Flags().StringSliceVar(&types, "type", nil, "Only show these event types")
	return cmd
}

type infoView struct {
	Backend  string              `json:"backend"`
	Restored bool                `json:"restored"`
	Save     session.Meta        `json:"save"`
	Planets  int                 `json:"planets"`
	Rooms    int                 `json:"rooms"`
	Prices   game.Prices         `json:"prices"`
	Starting economy.Resources   `json:"starting_resources"`
	Quirks   []string            `json:"quirks"`
	Items    []game.ItemTemplate `json:"items"`
}

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show save metadata and catalog details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(_ context.Context, a *bootstrap.App) (any, error) {
				cat := a.Session.Catalog()
				return infoView{
					Backend:  string(a.Config.SaveBackend),
					Restored: a.Loaded,
					Save:     a.Session.Meta(),
					Planets:  len(cat.Planets),
					Rooms:    len(cat.Rooms),
					Prices:   cat.Prices,
					Starting: cat.StartingResources,
					Quirks:   cat.Quirks,
					Items:    cat.Items,
				}, nil
			})
		},
	}
}
