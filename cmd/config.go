package cmd

import (
	"fmt"
	"time"
)

// Config carries everything the application needs to start: the HTTP
// listener, the database connection, and the tuning knobs for the
// notification outbox jobs.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DispatchBatchSize int
	OutboxRetention   time.Duration
}

// DSN builds the postgres connection string from the database fields.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
