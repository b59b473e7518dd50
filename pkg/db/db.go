// Package db opens the embedded sqlite database backing the sandbox API.
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InMemory is the DSN for a throwaway database, used by tests and the
// default sandbox setup.
const InMemory = "file::memory:?cache=shared"

type Config struct {
	// Path is the sqlite DSN. Empty means InMemory.
	Path string
}

func Open(cfg Config) (*gorm.DB, error) {
	path := cfg.Path
	if path == "" {
		path = InMemory
	}

	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite database [%s]: %w", path, err)
	}
	return database, nil
}
