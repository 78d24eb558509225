package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/cli"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/config"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/export"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "everfit.yaml", "path to config file")
	templatePath := flag.String("template", "", "library .xlsx used as the column template")
	outPath := flag.String("out", "library-export.xlsx", "where to write the exported sheet")
	email := flag.String("email", "", "login email (or EVERFIT_EMAIL)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("everfit-export", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *templatePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: everfit-export -template <sheet.xlsx> [-out library-export.xlsx] [-config everfit.yaml]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	userEmail, password, err := cli.Credentials(*email)
	if err != nil {
		log.Error("failed to read credentials", "error", err)
		os.Exit(1)
	}

	client := everfit.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	token, err := client.Login(userEmail, password)
	if err != nil {
		log.Error("login failed", "error", err)
		os.Exit(1)
	}
	log.Info("logged in", "email", userEmail)

	exporter := export.New(client, token, log)
	if err := exporter.Run(*templatePath, *outPath); err != nil {
		log.Error("export failed", "error", err)
		os.Exit(1)
	}

	log.Info("export complete", "file", *outPath)
}
