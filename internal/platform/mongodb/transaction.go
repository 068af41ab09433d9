package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placez/placez-api/internal/platform/logger"
	"github.com/placez/placez-api/internal/store"
)

// Ensure DB implements store.TxRunner.
var _ store.TxRunner = (*DB)(nil)

// InTransaction runs fn inside a MongoDB session transaction. The
// transactional context is passed to fn; store operations invoked with
// it join the transaction, so either every write in fn commits or none
// becomes visible. Requires the server to run as a replica set.
func (db *DB) InTransaction(ctx context.Context, fn store.TxFn) error {
	log := logger.FromContext(ctx)

	sess, err := db.client.StartSession()
	if err != nil {
		log.Error("failed to start mongodb session",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrTransactionFailed, err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil {
		log.Debug("transaction aborted",
			slog.String("error", err.Error()))
		return err
	}

	log.Debug("transaction committed successfully")
	return nil
}
