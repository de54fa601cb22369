package main

import (
	"flag"
	"fmt"
	"github.com/joho/godotenv"
	"iconpicker/internal/di"
	"iconpicker/internal/structures"
	"os"
)

func main() {
	var flags structures.CliFlags
	flag.StringVar(&flags.ConfigPath, "config", "./configs/config.yaml", "Path to configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "Mirror logs to the console")
	flag.Parse()

	// A missing .env is fine; configuration may come from the real environment.
	_ = godotenv.Load()

	if _, err := di.InitApp(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "iconpicker: %s\n", err)
		os.Exit(1)
	}
}
