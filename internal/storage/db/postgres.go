package db

import (
	"context"
	"fmt"
	"time"

	"github.com/linhnt-hub/reflex-flash-cards/internal/config"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

const pingTimeout = 5 * time.Second

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	conn, err := sqlx.Open("postgres", dsn(cfg.Conn))
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	conn.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	conn.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return conn, nil
}

func dsn(c config.DBConn) string {
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		c.Host, c.Port, c.Name, c.User, c.Password, c.SSL)
}
