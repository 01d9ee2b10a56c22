// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	createCalls  int
	deleteCalls  int
}

func newFakeTransactionRepository(transactions ...*entity.Transaction) *fakeTransactionRepository {
	repo := &fakeTransactionRepository{transactions: make(map[uuid.UUID]*entity.Transaction)}
	for _, tx := range transactions {
		repo.transactions[tx.ID] = tx
	}
	return repo
}

func (r *fakeTransactionRepository) Create(_ context.Context, tx *entity.Transaction) error {
	r.createCalls++
	r.transactions[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	tx, ok := r.transactions[id]
	if !ok || tx.UserID != userID || tx.DeletedAt != nil {
		return nil, domainerror.ErrTransactionNotFound
	}
	return tx, nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.deleteCalls++
	if tx, ok := r.transactions[id]; ok && tx.UserID == userID {
		now := fixedNow
		tx.DeletedAt = &now
	}
	return nil
}

func (r *fakeTransactionRepository) FindByDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID && tx.DeletedAt == nil && !tx.Date.Before(start) && !tx.Date.After(end) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) FindByGoalLink(ctx context.Context, userID, goalID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	all, _ := r.FindByDateRange(ctx, userID, start, end)
	var result []*entity.Transaction
	for _, tx := range all {
		if tx.IsLinkedTo(goalID) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) CountByGoalLink(_ context.Context, userID, goalID uuid.UUID) (int64, error) {
	var count int64
	for _, tx := range r.transactions {
		if tx.UserID == userID && tx.DeletedAt == nil && tx.IsLinkedTo(goalID) {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository(categories ...*entity.Category) *fakeCategoryRepository {
	repo := &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepository) ExistsForUser(_ context.Context, id, userID uuid.UUID) (bool, error) {
	c, ok := r.categories[id]
	return ok && c.OwnerID == userID, nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.OwnerID != userID {
		return nil, domainerror.ErrCategoryNotFoundForTransaction
	}
	return c, nil
}

type fakeGoalRepository struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepository(goals ...*entity.Goal) *fakeGoalRepository {
	repo := &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
	for _, g := range goals {
		repo.goals[g.ID] = g
	}
	return repo
}

func (r *fakeGoalRepository) Create(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goals []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type fakeProgressCache struct {
	invalidated []uuid.UUID
}

func (c *fakeProgressCache) Get(context.Context, uuid.UUID, string) (adapter.ProgressCacheEntry, error) {
	return adapter.ProgressCacheEntry{}, nil
}

func (c *fakeProgressCache) Set(context.Context, uuid.UUID, string, int64, map[uuid.UUID]entity.ProgressSnapshot) error {
	return nil
}

func (c *fakeProgressCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}
