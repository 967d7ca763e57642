package main

import (
	"log"

	"github.com/wirving/rhabits/cmd"
	"github.com/wirving/rhabits/internal/config"
	"github.com/wirving/rhabits/internal/storage/jsonfile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	path := cfg.StorePath
	if path == "" {
		path, err = jsonfile.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve data dir: %v", err)
		}
	}

	store, err := jsonfile.Open(path)
	if err != nil {
		log.Fatalf("failed to open habit store: %v", err)
	}

	cmd.Init(cfg, store)
	cmd.Execute()
}
