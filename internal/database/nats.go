package database

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// ConnectNats dials the NATS server used for domain events. An empty URL is
// allowed and yields a nil connection, which disables event publishing.
func ConnectNats(url, appName string) (*nats.Conn, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := nats.Connect(url,
		nats.Name(appName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to nats: %w", err)
	}

	return conn, nil
}
