package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Client wraps a connected mongo database. The underlying driver client
// is safe for concurrent use; handlers share this single instance.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB using the given connection string and pings
// the primary. The database name is taken from the DSN path.
func Open(ctx context.Context, dsn string) (*Client, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty mongo DSN")
	}

	connDSN, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mongo DSN: %w", err)
	}

	dbName := connDSN.Database
	if dbName == "" {
		dbName = "ashen"
	}

	clientOpts := options.Client().
		ApplyURI(connDSN.String()).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Client{client: client, db: client.Database(dbName)}, nil
}

// Database returns the connected database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Name returns the connected database name.
func (c *Client) Name() string {
	return c.db.Name()
}

// Ping checks connectivity to the primary.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists up to limit collection names, for the
// diagnostics endpoint.
func (c *Client) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := c.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Close disconnects the underlying client.
func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}
