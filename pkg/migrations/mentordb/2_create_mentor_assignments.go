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
		log.Println("creating mentor_assignments table...")
		if err := mghelper.CreateSchema(ctx, db, &pointstore.MentorAssignmentDao{}); err != nil {
			return err
		}
		// reminder jobs look up all mentees of a mentor
		return mghelper.CreateModelIndexes(ctx, db, &pointstore.MentorAssignmentDao{}, "mentee_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping mentor_assignments table...")
		return mghelper.DropTables(ctx, db, &pointstore.MentorAssignmentDao{})
	})
}
