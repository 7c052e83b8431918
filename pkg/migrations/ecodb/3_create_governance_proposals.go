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
		log.Println("creating governance_proposals table...")
		if err := mghelper.CreateSchema(ctx, db, &ecostore.ProposalDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexSpecs(ctx, db, &ecostore.ProposalDao{},
			mghelper.IndexSpec{Column: "status"},
			mghelper.IndexSpec{Column: "end_date"},
			mghelper.IndexSpec{Column: "created_at", Desc: true},
		)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping governance_proposals table...")
		return mghelper.DropTables(ctx, db, &ecostore.ProposalDao{})
	})
}
