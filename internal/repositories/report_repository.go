package repositories

import (
	"context"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository runs the read-only projection queries joining the fact
// table against all five catalogs.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) Roster() ([]models.RosterEntry, error) {
	ctx := context.Background()

	query := `
		SELECT
			a.id,
			t.first_name || ' ' || t.last_name AS teacher,
			su.name AS subject,
			se.name AS section,
			ro.name AS room,
			w.name AS weekday,
			a.start_min,
			a.end_min
		FROM assignments a
		JOIN teachers t ON a.teacher_id = t.id
		JOIN subjects su ON a.subject_id = su.id
		JOIN sections se ON a.section_id = se.id
		JOIN rooms ro ON a.room_id = ro.id
		JOIN weekdays w ON a.weekday_id = w.id
		ORDER BY t.last_name, t.first_name, w.ordinal, a.start_min
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("roster projection", err)
	}
	defer rows.Close()

	var entries []models.RosterEntry
	for rows.Next() {
		var entry models.RosterEntry
		var startMin, endMin int16
		err := rows.Scan(
			&entry.AssignmentID,
			&entry.Teacher,
			&entry.Subject,
			&entry.Section,
			&entry.Room,
			&entry.Weekday,
			&startMin,
			&endMin,
		)
		if err != nil {
			return nil, apperrors.Storage("scan roster entry", err)
		}
		entry.StartTime = models.ClockTime(startMin)
		entry.EndTime = models.ClockTime(endMin)
		entry.StartDisplay = entry.StartTime.Format12()
		entry.EndDisplay = entry.EndTime.Format12()
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SectionRow is one joined row of a section's weekly schedule.
type SectionRow struct {
	WeekdayID uuid.UUID
	Entry     models.SectionEntry
}

func (r *ReportRepository) SectionWeek(sectionID uuid.UUID) ([]SectionRow, error) {
	ctx := context.Background()

	query := `
		SELECT
			a.weekday_id,
			t.first_name || ' ' || t.last_name AS teacher,
			su.name AS subject,
			ro.name AS room,
			a.start_min,
			a.end_min
		FROM assignments a
		JOIN teachers t ON a.teacher_id = t.id
		JOIN subjects su ON a.subject_id = su.id
		JOIN rooms ro ON a.room_id = ro.id
		JOIN weekdays w ON a.weekday_id = w.id
		WHERE a.section_id = $1
		ORDER BY w.ordinal, a.start_min
	`

	rows, err := r.pool.Query(ctx, query, sectionID)
	if err != nil {
		return nil, apperrors.Storage("section projection", err)
	}
	defer rows.Close()

	var result []SectionRow
	for rows.Next() {
		var row SectionRow
		var startMin, endMin int16
		err := rows.Scan(
			&row.WeekdayID,
			&row.Entry.Teacher,
			&row.Entry.Subject,
			&row.Entry.Room,
			&startMin,
			&endMin,
		)
		if err != nil {
			return nil, apperrors.Storage("scan section entry", err)
		}
		row.Entry.StartTime = models.ClockTime(startMin)
		row.Entry.EndTime = models.ClockTime(endMin)
		row.Entry.StartDisplay = row.Entry.StartTime.Format12()
		row.Entry.EndDisplay = row.Entry.EndTime.Format12()
		result = append(result, row)
	}

	return result, rows.Err()
}
