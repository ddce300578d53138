package sql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_maxRetries   = 10
	_retryBackoff = 3 * time.Second
	_pingTimeout  = 5 * time.Second
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
)

func NewPosgreORM(dsn string, opts Options) (*DB, error) {
	pass, ok := os.LookupEnv("CONSIGNMENT_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), newGormConfig(opts))
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              opts.QueryTimeout,
		system:               "postgresql",
	}, nil
}

func NewPosgreDatabase(url string) *PostgreDatabase {
	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{
			url: url,
		}
	})

	return postgreInstance
}

var _ Database = (*PostgreDatabase)(nil)

// Open waits for postgres to accept connections, retrying while the server starts up.
func (d *PostgreDatabase) Open() error {
	var lastErr error
	for range _maxRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			lastErr = d.pingPool(conn)
			if lastErr == nil {
				d.Conn = conn
				return nil
			}
			conn.Close()
		} else {
			lastErr = err
		}

		time.Sleep(_retryBackoff)
	}

	return fmt.Errorf("imposible to connect to database after %d retries: %w", _maxRetries, lastErr)
}

func (d *PostgreDatabase) pingPool(conn *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), _pingTimeout)
	defer cancel()
	return conn.Ping(ctx)
}

func (d *PostgreDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

func (d *PostgreDatabase) Ping(ctx context.Context) error {
	if d.Conn == nil {
		return fmt.Errorf("postgres connection is not open")
	}

	pingCtx, cancel := context.WithTimeout(ctx, _pingTimeout)
	defer cancel()
	if err := d.Conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	return nil
}
