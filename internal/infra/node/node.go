package node

import (
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Version and CommitHash are set at build time through -ldflags.
var (
	Version    = "development"
	CommitHash = "unknown"
)

// Node identifies this server process in logs and telemetry.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
}

var (
	current     *Node
	currentOnce sync.Once
)

// GetNodeInfo returns the process identity. The instance id is generated once.
func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}

		current = &Node{
			ID:         uuid.New().String(),
			Hostname:   hostname,
			Version:    Version,
			CommitHash: CommitHash,
		}
	})

	return current
}

func (n *Node) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("version", n.Version),
		slog.String("commit", n.CommitHash),
		slog.String("instance", n.ID),
	}
}
