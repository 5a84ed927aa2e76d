package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/ent/migrate"
	"github.com/officinaverde/blog-api/pkg/config"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// NewSQLDB opens a *sql.DB connection pool for the configured database type.
func NewSQLDB(cfg *config.Config) (*sql.DB, error) {
	driver := cfg.GetString(config.KeyDBType)
	if driver == "" {
		log.Println("note: 'Database.Type' not set, defaulting to 'sqlite'")
		driver = "sqlite"
	}

	var dsn string
	var driverName string

	dbUser := cfg.GetString(config.KeyDBUser)
	dbPass := cfg.GetString(config.KeyDBPassword)
	dbHost := cfg.GetString(config.KeyDBHost)
	dbPort := cfg.GetString(config.KeyDBPort)
	dbName := cfg.GetString(config.KeyDBName)

	switch driver {
	case "mysql", "mariadb":
		driverName = "mysql"
		if dbUser == "" || dbHost == "" || dbPort == "" || dbName == "" {
			return nil, fmt.Errorf("incomplete MySQL connection parameters (User, Host, Port and Name are required)")
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			dbUser, dbPass, dbHost, dbPort, dbName)
	case "postgres":
		driverName = "postgres"
		if dbUser == "" || dbHost == "" || dbPort == "" || dbName == "" {
			return nil, fmt.Errorf("incomplete PostgreSQL connection parameters (User, Host, Port and Name are required)")
		}
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPass, dbName)
	case "sqlite", "sqlite3":
		driverName = "sqlite3"

		dataDir := "./data"
		if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}

		finalDbName := dbName
		if finalDbName == "" {
			finalDbName = "blog.db"
		}

		finalPath := filepath.Join(dataDir, finalDbName)
		log.Printf("SQLite database path: %s", finalPath)
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", finalPath)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection (%s): %w", driver, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database (%s): %w", driver, err)
	}

	log.Printf("connected to %s database", driver)
	return db, nil
}

// NormalizedDBType maps the configured type onto the names the repositories
// use for dialect-specific SQL.
func NormalizedDBType(cfg *config.Config) string {
	switch cfg.GetString(config.KeyDBType) {
	case "mysql", "mariadb":
		return "mysql"
	case "postgres":
		return "postgres"
	default:
		return "sqlite"
	}
}

// NewEntClient wraps the shared pool in an Ent client and runs auto-migration.
func NewEntClient(ctx context.Context, db *sql.DB, cfg *config.Config) (*ent.Client, error) {
	var entDialect string
	switch NormalizedDBType(cfg) {
	case "mysql":
		entDialect = dialect.MySQL
	case "postgres":
		entDialect = dialect.Postgres
	default:
		entDialect = dialect.SQLite
	}

	drv := entsql.OpenDB(entDialect, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
	); err != nil {
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}
	log.Println("database schema is up to date")

	return client, nil
}
