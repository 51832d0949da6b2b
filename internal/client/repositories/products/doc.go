// Package products is the local cache of the last successfully fetched
// catalog.
//
// The cache keeps catalog order: rows carry the position the product had in
// the fetched list, and GetAll returns them by position. ReplaceAll swaps the
// whole list; call it inside a transaction (see dbx.WithTx) so readers never
// observe a half-written catalog.
//
// Typical Usage
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return products.NewSQLiteRepository(tx).ReplaceAll(ctx, items)
//	})
//	cached, _ := products.NewSQLiteRepository(db).GetAll(ctx)
package products
