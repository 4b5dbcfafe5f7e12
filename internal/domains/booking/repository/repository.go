package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"smartoffice/infras/otel"
	"smartoffice/infras/postgres"
	"smartoffice/internal/domains/booking/model"
	"smartoffice/shared"
	"smartoffice/shared/constant"
	gDto "smartoffice/shared/dto"
	gRepo "smartoffice/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Booking is the durable store of live bookings.
type Booking interface {
	// GetAll lists bookings of one day, or every booking when date is empty.
	GetAll(ctx context.Context, date string) ([]model.Booking, error)
	// Transact runs fn with the bookings table locked against concurrent writers.
	// fn's error rolls everything back.
	Transact(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the view of the store inside Transact.
type Tx interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Insert(ctx context.Context, booking model.Booking) error
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otel,
			gRepo.WithOrderBy(model.FieldDate, model.FieldStartMin, model.FieldCreatedAt)),
		otel: otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, date string) ([]model.Booking, error) {
	filter := gDto.FilterGroup{}
	if date != constant.Empty {
		filter = shared.FilterByEq(model.FieldDate, date, model.TableName)
	}

	return r.Repository.GetAll(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Transact(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transact")
	defer scope.End()

	err := r.Transaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if err := r.LockTx(ctx, sqltx, gRepo.LockShareRowExclusive); err != nil {
			return err //nolint:wrapcheck
		}

		return fn(ctx, &txImpl{repo: r, sqltx: sqltx})
	})

	scope.TraceIfError(err)

	return err //nolint:wrapcheck
}

type txImpl struct {
	repo  *repositoryImpl
	sqltx *sqlx.Tx
}

func (t *txImpl) GetAll(ctx context.Context) ([]model.Booking, error) {
	return t.repo.GetAllTx(ctx, t.sqltx, gDto.FilterGroup{}) //nolint:wrapcheck
}

// Get returns the zero Booking when id is unknown.
func (t *txImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	return t.repo.GetTx(ctx, t.sqltx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (t *txImpl) Insert(ctx context.Context, booking model.Booking) error {
	return t.repo.InsertTx(ctx, t.sqltx, booking) //nolint:wrapcheck
}

// Delete reports whether a row was removed.
func (t *txImpl) Delete(ctx context.Context, id string) (bool, error) {
	affected, err := t.repo.DeleteTx(ctx, t.sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to delete booking %s: %w", id, err)
	}

	return affected > 0, nil
}
