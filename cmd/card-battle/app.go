package main

import (
	"github.com/Hariz09/game-hub-sub001/internal/config"
	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/storage"
)

func loadCatalogOrExit(cfg config.ServerConfig) *config.Catalog {
	cat, err := cfg.Catalog()
	if err != nil {
		logging.Fatal("Missing or invalid card catalog", err, logging.Fields{
			constants.LogFieldPath: cfg.ConfigPath,
			"hint":                 "provide a YAML file with a 'card_list' array of cards (name,type,strength,cost,loyalty,ability,ability_type,magnitude) and optional keys: starter_deck, stages, rules",
		})
	}
	logging.Info("catalog loaded", logging.Fields{
		constants.LogFieldCount: len(cat.Cards),
		"stages":                len(cat.Stages),
	})
	return cat
}

func createProgressStoreOrExit(cfg config.ServerConfig) storage.ProgressStore {
	if cfg.Memory {
		logging.Warn("using in-memory progress store; progress is lost on restart", nil, nil)
		return storage.NewMemoryProgressStore()
	}
	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: cfg.DBPath})
	}
	return storage.NewSQLiteProgressStore(db)
}
