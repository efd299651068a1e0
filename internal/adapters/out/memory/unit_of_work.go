package memory

import (
	"context"
	"errors"

	"medassist/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Database.
type UnitOfWorkFactory struct {
	db *Database
}

// NewUnitOfWorkFactory creates the factory.
func NewUnitOfWorkFactory(db *Database) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork serializes a business transaction against the Database. Begin
// takes the writer lock and snapshots orders and notifications; Rollback
// restores the snapshot. The chat transcript is not transactional.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) // no-op after Commit
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type UnitOfWork struct {
	db       *Database
	snapshot *snapshot
}

// Begin starts the transaction. Calling Begin twice is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.snapshot != nil {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	u.db.writer.Lock()

	s := u.db.snapshot()
	u.snapshot = &s
	return nil
}

// Commit keeps the changes and releases the writer lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.snapshot == nil {
		return ErrNoActiveTransaction
	}

	u.snapshot = nil
	u.db.writer.Unlock()
	return nil
}

// Rollback restores the snapshot and releases the writer lock.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.snapshot == nil {
		return ErrNoActiveTransaction
	}

	u.db.restore(*u.snapshot)
	u.snapshot = nil
	u.db.writer.Unlock()
	return nil
}

// OrderRepository returns a repository bound to the transaction if one is active.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{db: u.db, inTx: u.snapshot != nil}
}

// NotificationRepository returns a repository bound to the transaction if one is active.
func (u *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return &NotificationRepository{db: u.db, inTx: u.snapshot != nil}
}
