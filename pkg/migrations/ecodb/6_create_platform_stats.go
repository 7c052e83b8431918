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
		log.Println("creating platform_stats table...")
		if err := mghelper.CreateSchema(ctx, db, &ecostore.PlatformStatsDao{}); err != nil {
			return err
		}
		// One row per calendar date; the unique index is the upsert target and is scanned
		// backwards for the latest snapshot.
		return mghelper.CreateModelUniqueIndexes(ctx, db, &ecostore.PlatformStatsDao{}, "date")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping platform_stats table...")
		return mghelper.DropTables(ctx, db, &ecostore.PlatformStatsDao{})
	})
}
