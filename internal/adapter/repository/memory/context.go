package memory

import "context"

type contextKey string

const transactionKey contextKey = "memoryStoreTransaction"

func withTransaction(ctx context.Context, trx *transaction) context.Context {
	return context.WithValue(ctx, transactionKey, trx)
}

func transactionFromContext(ctx context.Context) (*transaction, bool) {
	trx, ok := ctx.Value(transactionKey).(*transaction)

	return trx, ok && trx != nil && trx.held != nil
}
