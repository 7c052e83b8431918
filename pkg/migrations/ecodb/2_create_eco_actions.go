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
		log.Println("creating eco_actions table...")
		if err := mghelper.CreateSchema(ctx, db, &ecostore.EcoActionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexSpecs(ctx, db, &ecostore.EcoActionDao{},
			mghelper.IndexSpec{Column: "wallet_address"},
			mghelper.IndexSpec{Column: "timestamp", Desc: true},
			mghelper.IndexSpec{Column: "status"},
			mghelper.IndexSpec{Column: "action_type"},
		)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping eco_actions table...")
		return mghelper.DropTables(ctx, db, &ecostore.EcoActionDao{})
	})
}
