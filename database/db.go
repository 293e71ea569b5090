package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"transport-admin/config"
)

var DB *sqlx.DB

func InitDB() error {
	cfg := config.Cfg.DB
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return err
	}
	DB = db
	log.Println("Database connected.")
	return nil
}

// Configured reports whether a tracking database was set up at all; with
// no database the dashboard falls back to the fixture provider.
func Configured() bool {
	return config.Cfg.DB.Host != ""
}
