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
		log.Println("creating daily_checkins table...")
		dao := &pointstore.DailyCheckinDao{}
		if err := mghelper.CreateSchema(ctx, db, dao); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraint(ctx, db, dao,
			"daily_checkins_checkin_type_check", "checkin_type IN ('good', 'bad')"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, dao, "user_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping daily_checkins table...")
		return mghelper.DropTables(ctx, db, &pointstore.DailyCheckinDao{})
	})
}
