package ecodb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/ecochain/ecochain-api/pkg/ecostore"
	mghelper "github.com/ecochain/ecochain-api/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating transactions table...")
		if err := mghelper.CreateSchema(ctx, db, &ecostore.TransactionDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelUniqueIndexes(ctx, db, &ecostore.TransactionDao{}, "transaction_hash"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexSpecs(ctx, db, &ecostore.TransactionDao{},
			mghelper.IndexSpec{Column: "from_address"},
			mghelper.IndexSpec{Column: "to_address"},
			mghelper.IndexSpec{Column: "timestamp", Desc: true},
		)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transactions table...")
		return mghelper.DropTables(ctx, db, &ecostore.TransactionDao{})
	})
}
