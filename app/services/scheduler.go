package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler launches the background job that closes out the previous
// day. It runs once at startup and then every hour; the job itself is
// idempotent so the extra runs are harmless.
func StartScheduler(db *sql.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			if err := MarkAbsentees(db); err != nil {
				log.Printf("Scheduler: failed to mark absentees: %v", err)
			}
			<-ticker.C
		}
	}()
	log.Println("Background scheduler started")
}

// MarkAbsentees inserts an Absent record for every active user with no
// attendance row for yesterday. The NOT EXISTS guard plus the
// (user_id, date) unique constraint make repeat runs no-ops.
func MarkAbsentees(db *sql.DB) error {
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)

	result, err := db.Exec(
		`INSERT INTO attendances (user_id, date, status)
		SELECT u.id, $1, 'Absent'
		FROM users u
		WHERE u.is_active = true
		AND NOT EXISTS (
			SELECT 1 FROM attendances a WHERE a.user_id = u.id AND a.date = $1
		)
		ON CONFLICT (user_id, date) DO NOTHING`,
		yesterday,
	)
	if err != nil {
		return err
	}

	if count, err := result.RowsAffected(); err == nil && count > 0 {
		log.Printf("Scheduler: marked %d user(s) absent for %s", count, yesterday)
	}
	return nil
}
