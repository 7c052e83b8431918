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
		log.Println("creating staking_records table...")
		if err := mghelper.CreateSchema(ctx, db, &ecostore.StakingRecordDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &ecostore.StakingRecordDao{}, "user_address", "status", "end_date")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping staking_records table...")
		return mghelper.DropTables(ctx, db, &ecostore.StakingRecordDao{})
	})
}
