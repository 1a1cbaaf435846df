package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saverctl/saverctl/pkg/history"
	"github.com/saverctl/saverctl/pkg/saver"
	"github.com/saverctl/saverctl/pkg/types"
	"github.com/saverctl/saverctl/pkg/watch"
)

// --- detect ---

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Report which screensaver backend is active",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient()
		if err != nil {
			return err
		}

		backend, ok := client.Detect()
		if !ok {
			r := types.Result{Status: types.StatusNotDetected, Message: saver.ErrNotDetected.Error()}
			return finish(r, nil, func() {
				printWarning("no screensaver backend detected")
			})
		}

		r := types.Result{Status: types.StatusSuccess, Backend: backend}
		return finish(r, nil, func() {
			fmt.Println(backend)
		})
	},
}

// --- timeout ---

var timeoutCmd = &cobra.Command{
	Use:   "timeout",
	Short: "Get or set the idle timeout",
}

var timeoutGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the idle timeout in seconds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		seconds, backend, err := client.GetTimeout(explicitBackend(cfg))
		r := saver.NewResult(backend, err)
		if err == nil {
			r.Seconds = seconds
		}
		return finish(r, err, func() {
			fmt.Println(seconds)
		})
	},
}

var timeoutSetCmd = &cobra.Command{
	Use:   "set <seconds>",
	Short: "Set the idle timeout in seconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil || seconds < 0 {
			return fmt.Errorf("seconds must be a non-negative integer, got %q", args[0])
		}

		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		backend, err := client.SetTimeout(explicitBackend(cfg), seconds)
		r := saver.NewResult(backend, err)
		if err == nil {
			r.Seconds = seconds
		}
		return finish(r, err, func() {
			printSuccess("idle timeout set to %ds on %s", seconds, backend)
		})
	},
}

func init() {
	timeoutCmd.AddCommand(timeoutGetCmd, timeoutSetCmd)
}

// --- enable / disable / enabled ---

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn the lock screen on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		backend, err := client.Enable(explicitBackend(cfg))
		return finish(saver.NewResult(backend, err), err, func() {
			printSuccess("lock screen enabled on %s", backend)
		})
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn the lock screen off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		backend, err := client.Disable(explicitBackend(cfg))
		return finish(saver.NewResult(backend, err), err, func() {
			printSuccess("lock screen disabled on %s", backend)
		})
	},
}

var enabledCmd = &cobra.Command{
	Use:   "enabled",
	Short: "Report whether the lock screen is enabled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		enabled, backend, err := client.IsEnabled(explicitBackend(cfg))
		r := saver.NewResult(backend, err)
		if err == nil {
			r.Flag = enabled
		}
		return finish(r, err, func() {
			if enabled {
				fmt.Println("enabled")
			} else {
				fmt.Println("disabled")
			}
		})
	},
}

// --- activate / deactivate / active ---

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Start the screensaver now, locking where the backend locks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		backend, err := client.Activate(explicitBackend(cfg))
		return finish(saver.NewResult(backend, err), err, func() {
			printSuccess("screensaver activated on %s", backend)
		})
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Stop the screensaver",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		backend, err := client.Deactivate(explicitBackend(cfg))
		return finish(saver.NewResult(backend, err), err, func() {
			printSuccess("screensaver deactivated on %s", backend)
		})
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Report whether the screensaver is active",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		active, backend, err := client.IsActive(explicitBackend(cfg))
		r := saver.NewResult(backend, err)
		if err == nil {
			r.Flag = active
		}
		return finish(r, err, func() {
			if active {
				fmt.Println("active")
			} else {
				fmt.Println("inactive")
			}
		})
	},
}

// --- poke ---

var pokeCmd = &cobra.Command{
	Use:   "poke",
	Short: "Reset the idle timer, postponing screensaver activation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		backend, err := client.PreventActivation(explicitBackend(cfg))
		return finish(saver.NewResult(backend, err), err, func() {
			printSuccess("idle timer reset on %s", backend)
		})
	},
}

// --- watch / keepalive / history ---

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the screensaver state and record transitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		printStatus("interval", "%s", cfg.WatchInterval)
		watcher := watch.New(client, store, explicitBackend(cfg), cfg.WatchInterval)
		return watcher.Run(ctx)
	},
}

var keepaliveCmd = &cobra.Command{
	Use:   "keepalive",
	Short: "Reset the idle timer periodically until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := buildClient()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		printStatus("interval", "%s", cfg.KeepaliveInterval)
		return watch.Keepalive(ctx, client, explicitBackend(cfg), cfg.KeepaliveInterval)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recently recorded screensaver state transitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		_, cfg, err := buildClient()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		events, err := store.Recent(limit)
		if err != nil {
			return err
		}

		for _, ev := range events {
			state := "inactive"
			if ev.Active {
				state = "active"
			}
			fmt.Printf("%s  %-12s  %s\n", ev.Timestamp.Format("2006-01-02 15:04:05"), ev.Backend, state)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of events to print")
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the saverctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("saverctl %s\n", version)
	},
}
