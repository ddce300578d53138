package sql

import "context"

type Database interface {
	Open() error
	Close()
	Ping(ctx context.Context) error
}
