// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func periodPtr(p entity.GoalPeriod) *entity.GoalPeriod {
	return &p
}

func timePtr(t time.Time) *time.Time {
	return &t
}

type fakeGoalRepository struct {
	mu          sync.Mutex
	goals       map[uuid.UUID]*entity.Goal
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeGoalRepository(goals ...*entity.Goal) *fakeGoalRepository {
	repo := &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
	for _, g := range goals {
		repo.goals[g.ID] = g
	}
	return repo
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGoalRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var goals []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			copied := *g
			goals = append(goals, &copied)
		}
	}
	return goals, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	if g, ok := r.goals[id]; ok && g.UserID == userID {
		delete(r.goals, id)
	}
	return nil
}

type fakeTransactionQuery struct {
	transactions []*entity.Transaction
	// afterRead runs once, after the first date range read has been served.
	afterRead func()
}

func (q *fakeTransactionQuery) FindByDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	if q.afterRead != nil {
		defer func() {
			hook := q.afterRead
			q.afterRead = nil
			hook()
		}()
	}

	var result []*entity.Transaction
	for _, tx := range q.transactions {
		if tx.UserID == userID && !tx.Date.Before(start) && !tx.Date.After(end) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (q *fakeTransactionQuery) FindByGoalLink(_ context.Context, userID, goalID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range q.transactions {
		if tx.UserID == userID && tx.IsLinkedTo(goalID) && !tx.Date.Before(start) && !tx.Date.After(end) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (q *fakeTransactionQuery) CountByGoalLink(_ context.Context, userID, goalID uuid.UUID) (int64, error) {
	var count int64
	for _, tx := range q.transactions {
		if tx.UserID == userID && tx.IsLinkedTo(goalID) {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepository struct {
	categories  map[uuid.UUID]*entity.Category
	lookupCalls int
}

func newFakeCategoryRepository(categories ...*entity.Category) *fakeCategoryRepository {
	repo := &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepository) ExistsForUser(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.lookupCalls++
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

type fakeProgressCache struct {
	entries         map[uuid.UUID]map[string]map[uuid.UUID]entity.ProgressSnapshot
	generations     map[uuid.UUID]int64
	setCalls        int
	staleSets       int
	invalidateCalls int
}

func newFakeProgressCache() *fakeProgressCache {
	return &fakeProgressCache{
		entries:     make(map[uuid.UUID]map[string]map[uuid.UUID]entity.ProgressSnapshot),
		generations: make(map[uuid.UUID]int64),
	}
}

func (c *fakeProgressCache) Get(_ context.Context, userID uuid.UUID, day string) (adapter.ProgressCacheEntry, error) {
	snapshots, ok := c.entries[userID][day]
	return adapter.ProgressCacheEntry{Snapshots: snapshots, Hit: ok, Generation: c.generations[userID]}, nil
}

func (c *fakeProgressCache) Set(_ context.Context, userID uuid.UUID, day string, generation int64, snapshots map[uuid.UUID]entity.ProgressSnapshot) error {
	c.setCalls++
	if generation != c.generations[userID] {
		c.staleSets++
		return adapter.ErrStaleProgress
	}
	if c.entries[userID] == nil {
		c.entries[userID] = make(map[string]map[uuid.UUID]entity.ProgressSnapshot)
	}
	c.entries[userID][day] = snapshots
	return nil
}

func (c *fakeProgressCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.invalidateCalls++
	c.generations[userID]++
	delete(c.entries, userID)
	return nil
}

func newTransaction(userID uuid.UUID, date time.Time, amount string, txType entity.TransactionType, categoryID, goalID *uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		Amount:     dec(amount),
		Type:       txType,
		CategoryID: categoryID,
		GoalID:     goalID,
	}
}

func newBudget(userID, categoryID uuid.UUID, target string, period entity.GoalPeriod) *entity.Goal {
	return &entity.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Groceries budget",
		TargetAmount: dec(target),
		StartDate:    time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
		Kind:         entity.BudgetGoal{CategoryID: categoryID, Period: period},
	}
}

func newSavings(userID uuid.UUID, target string, startDate time.Time, kind entity.GoalKind) *entity.Goal {
	return &entity.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Emergency fund",
		TargetAmount: dec(target),
		StartDate:    startDate,
		IsActive:     true,
		Kind:         kind,
	}
}
