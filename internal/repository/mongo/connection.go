package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connection wraps a MongoDB client and the application database. All
// connection configuration stays inside this package; services only see the
// store interfaces.
type Connection struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewConnection connects to MongoDB and verifies the connection with a ping.
func NewConnection(ctx context.Context, uri, databaseName string) (*Connection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Connection{
		client:   client,
		database: client.Database(databaseName),
	}, nil
}

// Collection returns a handle to the named collection.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

// Close disconnects the underlying client.
func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// Ping verifies the connection is alive.
func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongodb client is nil")
	}
	return c.client.Ping(ctx, nil)
}
