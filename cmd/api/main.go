package main

import (
	"context"
	"log"
	"net/http"

	"github.com/punchamoorthee/bankapi/internal/api"
	"github.com/punchamoorthee/bankapi/internal/config"
	"github.com/punchamoorthee/bankapi/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Backend is chosen once here; handlers only see the Store interface.
	var st store.Store
	switch cfg.StoreBackend {
	case "memory":
		st = store.NewMemory()
	case "postgres":
		pg, err := store.NewPostgres(context.Background(), cfg.DBSource)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pg.Close()
		st = pg
	}

	handler := api.NewHandler(st)
	r := api.NewRouter(handler)

	log.Printf("Server starting on :%s (backend: %s)", cfg.Port, cfg.StoreBackend)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
