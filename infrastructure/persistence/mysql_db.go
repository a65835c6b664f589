package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"vidlink/infrastructure/configuration"

	_ "github.com/go-sql-driver/mysql"
)

// NewMySQLDB creates a sql.DB for MySQL using native database/sql.
func NewMySQLDB() (*sql.DB, error) {
	cfg := configuration.C.Database.MySql

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(20 * time.Second)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
