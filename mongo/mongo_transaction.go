package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionRunner runs a unit of work either inside a MongoDB transaction
// or, when transactions are disabled, directly against the caller's context.
// Transactions require a replica set or sharded cluster.
type TransactionRunner struct {
	client  Client
	enabled bool
}

func NewTransactionRunner(client Client, enabled bool) *TransactionRunner {
	return &TransactionRunner{client: client, enabled: enabled}
}

// Enabled reports whether work is wrapped in a transaction.
func (t *TransactionRunner) Enabled() bool {
	return t.enabled
}

// WithTransaction executes fn. With transactions enabled fn receives a session
// context and everything it writes through that context commits or aborts together.
func (t *TransactionRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}

	return t.client.UseSession(ctx, func(sc mongo.SessionContext) error {
		_, err := sc.WithTransaction(sc, func(txCtx mongo.SessionContext) (interface{}, error) {
			return nil, fn(txCtx)
		})
		return err
	})
}
