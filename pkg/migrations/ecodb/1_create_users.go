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
		log.Println("creating users table...")
		if err := mghelper.CreateSchema(ctx, db, &ecostore.UserDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexSpecs(ctx, db, &ecostore.UserDao{},
			mghelper.IndexSpec{Column: "wallet_address", Unique: true},
			mghelper.IndexSpec{Column: "email", Where: "email IS NOT NULL"},
			mghelper.IndexSpec{Column: "eco_score", Desc: true},
		)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping users table...")
		return mghelper.DropTables(ctx, db, &ecostore.UserDao{})
	})
}
