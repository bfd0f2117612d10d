// Package main starts the seance Discord bot and handles termination.
//
// The process is a transport adapter around investigation sessions; all
// journal state lives in memory and ends with the process.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	seancecmd "github.com/hollowedhq/seance/internal/cmd/seance"
)

func main() {
	cfg, err := seancecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SEANCE] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seancecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
