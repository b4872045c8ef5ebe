package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	routingQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/routing/queries"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/setup"
	transitCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/transit/commands"
	"github.com/RocketManDan1/Frontier-sub001/internal/infrastructure/config"
	"github.com/RocketManDan1/Frontier-sub001/internal/infrastructure/database"
	"github.com/RocketManDan1/Frontier-sub001/internal/infrastructure/pidfile"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "frontier-server",
		Short: "Authoritative space-logistics simulation server",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(
		startCommand(),
		migrateCommand(),
		seedCommand(),
		routeCommand(),
		clockCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the simulation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			pf := pidfile.New(cfg.Server.PidFile)
			if err := pf.Acquire(); err != nil {
				return err
			}
			defer func() {
				if err := pf.Release(); err != nil {
					log.Printf("Warning: failed to release PID file: %v", err)
				}
			}()

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := a.bootstrap(ctx); err != nil {
				return err
			}

			log.Printf("Server running (time scale %gx, sweep every %s)", a.clock.Scale(), cfg.Server.SweepInterval)
			return runArrivalSweep(ctx, a)
		},
	}
}

// runArrivalSweep settles due arrivals on a fixed cadence until the
// context is cancelled. Arrivals are a pure function of game time, so
// a missed tick is caught up by the next one.
func runArrivalSweep(ctx context.Context, a *app) error {
	limiter := rate.NewLimiter(rate.Every(a.cfg.Server.SweepInterval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			log.Printf("Server stopping")
			return nil
		}
		resp, err := a.mediator.Send(ctx, &transitCommands.SettleArrivalsCommand{})
		if err != nil {
			log.Printf("Arrival sweep failed: %v", err)
			continue
		}
		if settled, ok := resp.(*transitCommands.SettleArrivalsResponse); ok && len(settled.ArrivedShipIDs) > 0 {
			log.Printf("Settled %d arrivals: %v", len(settled.ArrivedShipIDs), settled.ArrivedShipIDs)
		}
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			fmt.Println("Schema migrated")
			return nil
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate, seed the location graph and baseline ship, and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.bootstrap(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Store seeded")
			return nil
		},
	}
}

func routeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Print the least-delta-v route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			resp, err := a.mediator.Send(cmd.Context(), &routingQueries.GetRouteQuery{
				FromID: args[0],
				ToID:   args[1],
			})
			if err != nil {
				return err
			}
			route := resp.(*routingQueries.GetRouteResponse).Route
			fmt.Printf("%s -> %s: %.1f m/s over %.0f s\n", route.FromID, route.ToID, route.DvMS, route.TofS)
			fmt.Printf("path: %v\n", route.Path)
			return nil
		},
	}
}

func clockCommand() *cobra.Command {
	clock := &cobra.Command{
		Use:   "clock",
		Short: "Inspect or control the simulation clock",
	}
	clock.AddCommand(
		clockActionCommand("show", "Print the current game time"),
		clockActionCommand("pause", "Freeze game time"),
		clockActionCommand("resume", "Resume game time"),
		clockActionCommand("reset", "Rewind game time to the epoch"),
	)
	return clock
}

func clockActionCommand(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			if err := setup.LoadOrPersistClock(ctx, a.meta, a.clock); err != nil {
				return err
			}

			switch action {
			case "pause":
				a.clock.SetPaused(true)
			case "resume":
				a.clock.SetPaused(false)
			case "reset":
				a.clock.Reset()
			}
			if action != "show" {
				if err := setup.PersistClock(ctx, a.meta, a.clock); err != nil {
					return err
				}
			}

			state := "running"
			if a.clock.Paused() {
				state = "paused"
			}
			fmt.Printf("game time %s (%s, %gx)\n", a.clock.Now().Format("2006-01-02 15:04:05"), state, a.clock.Scale())
			return nil
		},
	}
}
