package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createTeachersTable,
		createSubjectsTable,
		createSectionsTable,
		createRoomsTable,
		createWeekdaysTable,
		createAssignmentsTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

// SeedWeekdays inserts the fixed weekday list on first initialization.
// Re-running against an already seeded store is a no-op.
func SeedWeekdays(pool *pgxpool.Pool, names []string) error {
	ctx := context.Background()

	for i, name := range names {
		_, err := pool.Exec(ctx, `
			INSERT INTO weekdays (id, name, ordinal)
			VALUES (gen_random_uuid(), $1, $2)
			ON CONFLICT (name) DO NOTHING
		`, name, i+1)
		if err != nil {
			return fmt.Errorf("seeding weekday %q failed: %w", name, err)
		}
	}

	return nil
}

const createTeachersTable = `
CREATE TABLE IF NOT EXISTS teachers (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  CONSTRAINT teachers_name_unique UNIQUE (first_name, last_name)
);

CREATE INDEX IF NOT EXISTS idx_teachers_last_first ON teachers(last_name, first_name);
`

const createSubjectsTable = `
CREATE TABLE IF NOT EXISTS subjects (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  description TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createSectionsTable = `
CREATE TABLE IF NOT EXISTS sections (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  description TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createRoomsTable = `
CREATE TABLE IF NOT EXISTS rooms (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  capacity INT NOT NULL CHECK (capacity > 0),
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createWeekdaysTable = `
CREATE TABLE IF NOT EXISTS weekdays (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  ordinal SMALLINT NOT NULL UNIQUE
);
`

// Times are minutes since midnight. Catalog references are RESTRICT: a
// catalog row with assignments cannot be deleted. The two UNIQUE slot
// constraints back up the conflict checker at the persistence layer.
const createAssignmentsTable = `
CREATE TABLE IF NOT EXISTS assignments (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE RESTRICT,
  subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE RESTRICT,
  section_id UUID NOT NULL REFERENCES sections(id) ON DELETE RESTRICT,
  room_id UUID NOT NULL REFERENCES rooms(id) ON DELETE RESTRICT,
  weekday_id UUID NOT NULL REFERENCES weekdays(id) ON DELETE RESTRICT,
  start_min SMALLINT NOT NULL CHECK (start_min >= 0 AND start_min < 1440),
  end_min SMALLINT NOT NULL CHECK (end_min > 0 AND end_min <= 1440),
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  CONSTRAINT assignments_interval_valid CHECK (start_min < end_min),
  CONSTRAINT assignments_teacher_slot_unique UNIQUE (teacher_id, weekday_id, start_min, end_min),
  CONSTRAINT assignments_room_slot_unique UNIQUE (room_id, weekday_id, start_min, end_min)
);

CREATE INDEX IF NOT EXISTS idx_assignments_teacher_weekday ON assignments(teacher_id, weekday_id);
CREATE INDEX IF NOT EXISTS idx_assignments_room_weekday ON assignments(room_id, weekday_id);
CREATE INDEX IF NOT EXISTS idx_assignments_section ON assignments(section_id);
`
