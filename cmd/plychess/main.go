// Command plychess is the UCI entry point: it wires configuration and
// logging, optionally starts a CPU profile, and hands stdin/stdout to
// the UCI loop, grounded on the teacher engine's cmd/FrankyGo/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aharrow/plychess/internal/config"
	"github.com/aharrow/plychess/internal/logging"
	"github.com/aharrow/plychess/internal/uci"
)

var out = message.NewPrinter(language.English)

const version = "0.1.0"

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "./config.toml", "path to configuration file")
	logLevel := flag.String("loglevel", "", "override the configured log level\n(CRITICAL|ERROR|WARNING|NOTICE|INFO|DEBUG)")
	hashMB := flag.Int("hash", 0, "override the configured transposition table size in MB")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to the current directory")
	flag.Parse()

	if *versionFlag {
		out.Printf("plychess %s\n", version)
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg := config.Load(*configPath)
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *hashMB > 0 {
		cfg.Search.HashSizeMB = *hashMB
	}

	log := logging.Get("engine", logging.ParseLevel(cfg.Log.Level))
	log.Infof("plychess %s starting, hash=%dMB", version, cfg.Search.HashSizeMB)

	engine := uci.New(os.Stdout, cfg.Search.HashSizeMB)
	if err := engine.Loop(context.Background(), os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "uci loop error:", err)
		os.Exit(1)
	}
}
