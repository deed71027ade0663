package mentordb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/mentor-api/pkg/pgutil/migrations"
	"github.com/chainsafe/mentor-api/pkg/pointstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating user_points table...")
		return mghelper.CreateSchema(ctx, db, &pointstore.UserPointsDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping user_points table...")
		return mghelper.DropTables(ctx, db, &pointstore.UserPointsDao{})
	})
}
