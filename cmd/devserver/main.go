package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/sispat/patrimonio-cli/internal/devserver"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

func main() {

	addr := flag.String("addr", ":8000", "listen address")
	dbPath := flag.String("db", "devserver.db", "path of the sqlite database")
	seed := flag.Bool("seed", true, "seed fixture data when the database is empty")
	level := flag.String("l", "info", "log level (debug|info|warn|error)")
	flag.Parse()

	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(*level))

	store, err := devserver.OpenStore(ctx, *dbPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	if *seed {
		if err := store.Seed(ctx); err != nil {
			log.Fatalf("seeding: %v", err)
		}
	}

	srv := devserver.NewServer(store, logger)
	logger.Info(ctx, "dev asset service listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatalf("%v", err)
	}
}
