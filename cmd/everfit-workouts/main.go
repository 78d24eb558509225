package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/cli"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/config"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/extract"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/sheet"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/sync"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "everfit.yaml", "path to config file")
	filePath := flag.String("file", "", "path to the workout program .xlsx")
	email := flag.String("email", "", "login email (or EVERFIT_EMAIL)")
	dryRun := flag.Bool("dry-run", false, "compile payloads but don't send anything")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("everfit-workouts", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: everfit-workouts -file <sheet.xlsx> [-config everfit.yaml] [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	grid, err := sheet.Load(*filePath)
	if err != nil {
		log.Error("failed to load sheet", "error", err)
		os.Exit(1)
	}
	workouts, err := extract.Workouts(grid)
	if err != nil {
		log.Error("failed to extract workouts", "error", err)
		os.Exit(1)
	}
	log.Info("extracted workouts", "count", len(workouts))

	client := everfit.NewClient(cfg.API.BaseURL, cfg.API.Timeout())

	var token string
	if !*dryRun {
		userEmail, password, err := cli.Credentials(*email)
		if err != nil {
			log.Error("failed to read credentials", "error", err)
			os.Exit(1)
		}
		token, err = client.Login(userEmail, password)
		if err != nil {
			log.Error("login failed", "error", err)
			os.Exit(1)
		}
		log.Info("logged in", "email", userEmail)
	} else {
		log.Info("DRY RUN mode: payloads will be compiled but nothing is sent")
	}

	stateDir, err := cli.StateDir(cfg.State.Dir)
	if err != nil {
		log.Error("failed to resolve state directory", "error", err)
		os.Exit(1)
	}
	runLog, err := sync.OpenRunLog(stateDir)
	if err != nil {
		log.Error("failed to open run log", "error", err)
		os.Exit(1)
	}
	defer runLog.Close()

	syncer, err := sync.NewWorkoutSync(client, token, cfg, runLog, *dryRun, log)
	if err != nil {
		log.Error("failed to start sync", "error", err)
		os.Exit(1)
	}
	syncer.Run(workouts)

	printStats(syncer.Stats())
	log.Info("sync complete", "run_id", runLog.RunID())
}

func printStats(stats sync.Stats) {
	fmt.Println()
	fmt.Println("=== Sync Summary ===")
	fmt.Printf("  Workouts seen:   %d\n", stats.RowsTotal)
	fmt.Printf("  Created:         %d\n", stats.Created)
	fmt.Printf("  Skipped:         %d\n", stats.Skipped)
	fmt.Printf("  Failed:          %d\n", stats.Failed)

	if len(stats.Failures) > 0 {
		fmt.Println("\n  Failures:")
		for _, f := range stats.Failures {
			fmt.Printf("    - %s\n", f)
		}
	}
	fmt.Println()
}
