package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hariz09/game-hub-sub001/internal/game"
	"github.com/Hariz09/game-hub-sub001/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the sqlite database at dataSourceName, creating its
// parent directory when needed, and migrates the progress schema.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dataSourceName != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dataSourceName, err)
	}

	// Keep schema updated via AutoMigrate; removing the file resets all progress.
	if err := db.AutoMigrate(&game.Progress{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logging.Info("database ready", logging.Fields{"path": dataSourceName})
	return db, nil
}
