// Package db loads flight legs from a SQL database. The driver is chosen by
// name; the caller registers it with a blank import.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/atharv3903/flightplan/internal/model"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

var schema = map[string]string{
	DriverMySQL: `
        CREATE TABLE IF NOT EXISTS legs (
            leg_id     BIGINT AUTO_INCREMENT PRIMARY KEY,
            city_a     VARCHAR(255) NOT NULL,
            city_b     VARCHAR(255) NOT NULL,
            cost       DOUBLE NOT NULL,
            time_units INT NOT NULL
        )`,
	DriverPostgres: `
        CREATE TABLE IF NOT EXISTS legs (
            leg_id     BIGSERIAL PRIMARY KEY,
            city_a     VARCHAR(255) NOT NULL,
            city_b     VARCHAR(255) NOT NULL,
            cost       DOUBLE PRECISION NOT NULL,
            time_units INTEGER NOT NULL
        )`,
}

type Store struct {
	DB     *sql.DB
	Driver string
}

// Open connects and pings the database.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	if _, ok := schema[driver]; !ok {
		return Store{}, fmt.Errorf("db: unsupported driver %q", driver)
	}
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return Store{}, fmt.Errorf("db: open %s: %w", driver, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return Store{}, fmt.Errorf("db: ping %s: %w", driver, err)
	}
	return Store{DB: conn, Driver: driver}, nil
}

func (s Store) Close() error {
	return s.DB.Close()
}

// Migrate creates the legs table if it does not exist.
func (s Store) Migrate(ctx context.Context) error {
	ddl, ok := schema[s.Driver]
	if !ok {
		return fmt.Errorf("db: unsupported driver %q", s.Driver)
	}
	if _, err := s.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}

// Edges returns all legs in insertion order.
func (s Store) Edges(ctx context.Context) ([]model.Edge, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT city_a, city_b, cost, time_units
        FROM legs
        ORDER BY leg_id
    `)
	if err != nil {
		return nil, fmt.Errorf("db: query legs: %w", err)
	}
	defer rows.Close()

	edges := make([]model.Edge, 0, 64)
	for rows.Next() {
		var e model.Edge
		if err := rows.Scan(&e.A, &e.B, &e.Cost, &e.Time); err != nil {
			return nil, fmt.Errorf("db: scan leg: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db: read legs: %w", err)
	}
	return edges, nil
}

func (s Store) AddEdge(ctx context.Context, e model.Edge) error {
	_, err := s.DB.ExecContext(ctx,
		s.rebind(`INSERT INTO legs (city_a, city_b, cost, time_units) VALUES (?, ?, ?, ?)`),
		e.A, e.B, e.Cost, e.Time)
	if err != nil {
		return fmt.Errorf("db: insert leg %s-%s: %w", e.A, e.B, err)
	}
	return nil
}

// rebind turns ? placeholders into $1, $2, ... for PostgreSQL.
func (s Store) rebind(query string) string {
	if s.Driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
