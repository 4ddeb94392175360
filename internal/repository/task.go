package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"driver-dispatch-service/internal/domain"
	"driver-dispatch-service/internal/ports/assigntx"
)

const taskColumns = `id, appointment_id, external_id, unit_number, driver_id,
        notification_status, last_notified_driver_id, declined_driver_ids,
        notification_sent_at, accepted_at, declined_at`

// TaskRepo represents the task repository.
type TaskRepo struct {
	db *pgxpool.Pool
}

// NewTaskRepo creates a new TaskRepo.
func NewTaskRepo(db *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{db: db}
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.AppointmentID, &t.ExternalID, &t.UnitNumber, &t.DriverID,
		&t.Status, &t.LastNotifiedDriverID, &t.DeclinedDriverIDs,
		&t.NotificationSentAt, &t.AcceptedAt, &t.DeclinedAt)
	return t, err
}

func groupTasks(tasks []domain.Task) []domain.TaskGroup {
	var groups []domain.TaskGroup
	byUnit := make(map[int]int)
	for _, t := range tasks {
		idx, ok := byUnit[t.UnitNumber]
		if !ok {
			groups = append(groups, domain.TaskGroup{UnitNumber: t.UnitNumber})
			idx = len(groups) - 1
			byUnit[t.UnitNumber] = idx
		}
		groups[idx].Tasks = append(groups[idx].Tasks, t)
	}
	return groups
}

// TaskGroups returns the appointment's task groups ordered by unit number.
func (r *TaskRepo) TaskGroups(ctx context.Context, appointmentID int64) ([]domain.TaskGroup, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+taskColumns+`
        FROM tasks
        WHERE appointment_id = $1
        ORDER BY unit_number, id
    `, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("list tasks for appointment %d: %w", appointmentID, err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groupTasks(tasks), nil
}

// SweepCandidates returns units still offered and unassigned whose most
// recent offer went out before olderThan.
func (r *TaskRepo) SweepCandidates(ctx context.Context, olderThan time.Time) ([]domain.UnitRef, error) {
	rows, err := r.db.Query(ctx, `
        SELECT DISTINCT appointment_id, unit_number
        FROM tasks
        WHERE notification_status = $1
          AND driver_id IS NULL
          AND notification_sent_at < $2
        ORDER BY appointment_id, unit_number
    `, string(domain.NotifySent), olderThan)
	if err != nil {
		return nil, fmt.Errorf("sweep candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.UnitRef
	for rows.Next() {
		var ref domain.UnitRef
		if err := rows.Scan(&ref.AppointmentID, &ref.UnitNumber); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// HasTasks reports whether any task rows exist for the appointment.
func (r *TaskRepo) HasTasks(ctx context.Context, appointmentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE appointment_id = $1)`, appointmentID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has tasks for appointment %d: %w", appointmentID, err)
	}
	return exists, nil
}

// InsertTasks creates the task rows of a booking's task sequence.
func (r *TaskRepo) InsertTasks(ctx context.Context, tasks []domain.Task) error {
	for i := range tasks {
		t := &tasks[i]
		err := r.db.QueryRow(ctx, `
            INSERT INTO tasks (appointment_id, external_id, unit_number, notification_status, declined_driver_ids)
            VALUES ($1, $2, $3, $4, '{}')
            RETURNING id
        `, t.AppointmentID, t.ExternalID, t.UnitNumber, string(domain.NotifyNone)).Scan(&t.ID)
		if err != nil {
			return fmt.Errorf("insert task unit %d: %w", t.UnitNumber, err)
		}
	}
	return nil
}

// WithTx opens a transaction and executes fn within it.
func (r *TaskRepo) WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents the task repository inside a transaction.
type TxRepo struct {
	tx pgx.Tx
}

// TaskGroup - loads one unit's task group for update.
func (r *TxRepo) TaskGroup(ctx context.Context, appointmentID int64, unit int) (*domain.TaskGroup, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT `+taskColumns+`
        FROM tasks
        WHERE appointment_id = $1 AND unit_number = $2
        ORDER BY id
        FOR UPDATE
    `, appointmentID, unit)
	if err != nil {
		return nil, fmt.Errorf("load task group %d/%d: %w", appointmentID, unit, err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	return &domain.TaskGroup{UnitNumber: unit, Tasks: tasks}, nil
}

// MarkOffered - records an offer to driverID for every task in the group.
func (r *TxRepo) MarkOffered(ctx context.Context, appointmentID int64, unit int, driverID int64, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE tasks
        SET notification_status = $3,
            last_notified_driver_id = $4,
            notification_sent_at = $5,
            updated_at = now()
        WHERE appointment_id = $1 AND unit_number = $2
    `, appointmentID, unit, string(domain.NotifySent), driverID, at)
	if err != nil {
		return fmt.Errorf("mark offered %d/%d: %w", appointmentID, unit, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("task group %d/%d not found", appointmentID, unit)
	}
	return nil
}

// MarkAccepted - binds driverID to every task in the group.
func (r *TxRepo) MarkAccepted(ctx context.Context, appointmentID int64, unit int, driverID int64, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE tasks
        SET driver_id = $3,
            notification_status = $4,
            accepted_at = $5,
            updated_at = now()
        WHERE appointment_id = $1 AND unit_number = $2
    `, appointmentID, unit, driverID, string(domain.NotifyAccepted), at)
	if err != nil {
		return fmt.Errorf("mark accepted %d/%d: %w", appointmentID, unit, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("task group %d/%d not found", appointmentID, unit)
	}
	return nil
}

// MarkDeclined - records the decline and appends driverID to the exclusion
// set of every task in the group.
func (r *TxRepo) MarkDeclined(ctx context.Context, appointmentID int64, unit int, driverID int64, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE tasks
        SET notification_status = $3,
            declined_at = $4,
            driver_id = NULL,
            declined_driver_ids = CASE
                WHEN $5 = ANY(declined_driver_ids) THEN declined_driver_ids
                ELSE array_append(declined_driver_ids, $5)
            END,
            updated_at = now()
        WHERE appointment_id = $1 AND unit_number = $2
    `, appointmentID, unit, string(domain.NotifyDeclined), at, driverID)
	if err != nil {
		return fmt.Errorf("mark declined %d/%d: %w", appointmentID, unit, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("task group %d/%d not found", appointmentID, unit)
	}
	return nil
}

// AppendExclusion - adds driverID to the group's exclusion set without a
// decline stamp (expiry path).
func (r *TxRepo) AppendExclusion(ctx context.Context, appointmentID int64, unit int, driverID int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE tasks
        SET declined_driver_ids = CASE
                WHEN $3 = ANY(declined_driver_ids) THEN declined_driver_ids
                ELSE array_append(declined_driver_ids, $3)
            END,
            updated_at = now()
        WHERE appointment_id = $1 AND unit_number = $2
    `, appointmentID, unit, driverID)
	if err != nil {
		return fmt.Errorf("append exclusion %d/%d: %w", appointmentID, unit, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("task group %d/%d not found", appointmentID, unit)
	}
	return nil
}

// SetGroupStatus - sets the notification status of every task in the group.
func (r *TxRepo) SetGroupStatus(ctx context.Context, appointmentID int64, unit int, status domain.NotificationStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE tasks
        SET notification_status = $3,
            updated_at = now()
        WHERE appointment_id = $1 AND unit_number = $2
    `, appointmentID, unit, string(status))
	if err != nil {
		return fmt.Errorf("set group status %d/%d: %w", appointmentID, unit, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("task group %d/%d not found", appointmentID, unit)
	}
	return nil
}

// ClearAssignment - unbinds the group's driver, returning it to unassigned.
// The exclusion set is left intact.
func (r *TxRepo) ClearAssignment(ctx context.Context, appointmentID int64, unit int) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE tasks
        SET driver_id = NULL,
            notification_status = $3,
            accepted_at = NULL,
            updated_at = now()
        WHERE appointment_id = $1 AND unit_number = $2
    `, appointmentID, unit, string(domain.NotifyNone))
	if err != nil {
		return fmt.Errorf("clear assignment %d/%d: %w", appointmentID, unit, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("task group %d/%d not found", appointmentID, unit)
	}
	return nil
}

// InsertReservation - reserves the driver's time slot.
func (r *TxRepo) InsertReservation(ctx context.Context, res *domain.Reservation) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO reservations (appointment_id, driver_id, slot_start, slot_end)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, res.AppointmentID, res.DriverID, res.SlotStart, res.SlotEnd).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// DeleteReservation - releases the driver's slot for the appointment.
func (r *TxRepo) DeleteReservation(ctx context.Context, appointmentID, driverID int64) error {
	_, err := r.tx.Exec(ctx,
		`DELETE FROM reservations WHERE appointment_id = $1 AND driver_id = $2`,
		appointmentID, driverID)
	if err != nil {
		return fmt.Errorf("delete reservation %d/%d: %w", appointmentID, driverID, err)
	}
	return nil
}

var _ assigntx.Repository = (*TxRepo)(nil)
