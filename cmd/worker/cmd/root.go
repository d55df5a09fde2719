/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/willipe53/onebor-position-keeper/cmd/setup"
	"github.com/willipe53/onebor-position-keeper/internal/common/graceful"
	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/models"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application running the position keeping pass",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringP(scheduleCmdSpec, "s", "* * * * *", "cron spec for the keeper pass")
}

var (
	runCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run a single position keeping pass",
		Long:    `Drains the transaction queue once, updates statuses, reconciles, and exits.`,
		Example: "worker run",
		Run:     runPass,
	}
)

func runPass(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	s, stopperContract, err := setup.Init("worker")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)

	out, err := s.Service.Keeper.RunPass(ctx, models.KeeperTriggerManual)
	if err != nil {
		log.Fatalf(ctx, "keeper pass failed: %v", err)
	}

	log.Info(ctx, "keeper pass finished",
		log.String("holder", out.Holder),
		log.Bool("conflict", out.Conflict),
		log.Int64("processed", out.Processed),
		log.Int64("reconciled", out.Reconciled))
}

var (
	scheduleCmd = &cobra.Command{
		Use:     "schedule",
		Short:   "Run position keeping passes on a cron schedule",
		Long:    `Keeps the process alive and triggers a keeper pass on every tick until interrupted.`,
		Example: "worker schedule -s='*/5 * * * *'",
		Run:     runSchedule,
	}
	scheduleCmdSpec = "spec"
)

func runSchedule(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	spec, _ := ccmd.Flags().GetString(scheduleCmdSpec)

	s, stopperContract, err := setup.Init("worker")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	c := cron.New()
	_, err = c.AddFunc(spec, func() {
		// overlap between ticks is resolved by the lease: the losing pass
		// reports conflict and exits
		out, passErr := s.Service.Keeper.RunPass(ctx, models.KeeperTriggerScheduled)
		if passErr != nil {
			log.Error(ctx, "keeper pass failed", log.Err(passErr))
			return
		}
		log.Info(ctx, "keeper pass finished",
			log.String("holder", out.Holder),
			log.Bool("conflict", out.Conflict),
			log.Int64("processed", out.Processed),
			log.Int64("reconciled", out.Reconciled))
	})
	if err != nil {
		log.Fatalf(ctx, "invalid cron spec %q: %v", spec, err)
	}

	c.Start()
	stoppers := append([]graceful.ProcessStopper{func(ctx context.Context) error {
		<-c.Stop().Done()
		return nil
	}}, stopperContract...)

	log.Infof(ctx, "keeper scheduled with spec %q", spec)
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
	log.Info(ctx, "worker stopped!")
}
