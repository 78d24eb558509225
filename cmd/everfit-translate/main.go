package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/config"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/translate"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "everfit.yaml", "path to config file")
	filePath := flag.String("file", "", "library .xlsx whose instructions need translating")
	outPath := flag.String("out", "", "where to write the translated sheet (default: overwrite -file)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("everfit-translate", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: everfit-translate -file <sheet.xlsx> [-out translated.xlsx] [-config everfit.yaml]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *outPath == "" {
		*outPath = *filePath
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.DeepL.AuthKey == "" {
		log.Error("no DeepL auth key configured, set deepl.auth_key or EVERFIT_DEEPL_AUTH_KEY")
		os.Exit(1)
	}

	engine := translate.NewDeepLClient(cfg.DeepL.BaseURL, cfg.DeepL.AuthKey, cfg.API.Timeout())
	translator := translate.NewTranslator(engine, log)

	if err := translator.File(*filePath, *outPath); err != nil {
		log.Error("translation failed", "error", err)
		os.Exit(1)
	}

	log.Info("translation complete", "file", *outPath)
}
