// Package store owns the task and expense collections plus the active
// filter state. Every mutation updates the in-memory collection first and
// then writes the whole collection through the key-value adapter.
//
// Persistence failures never reach callers: reads degrade to an absent
// value, writes are logged and the in-memory state stays authoritative
// until the next successful save.
package store

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"organizador/internal/core"
	"organizador/internal/kv"
	"organizador/internal/log"
)

// Filters is the ephemeral filter/search state. It is never persisted.
type Filters struct {
	TaskSearch      string
	ExpenseCategory core.Category // empty = no filter
	ExpenseMonth    string        // YYYY-MM, empty = no filter
}

// Store is the single-writer owner of both collections.
type Store struct {
	kv       kv.Store
	logger   *log.Logger
	now      func() time.Time
	newID    func() string
	tasks    []core.Task
	expenses []core.Expense
	filters  Filters
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger sets the logger. The store scopes it to its own component.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger.WithComponent(log.ComponentStore) }
}

// WithClock overrides the time source for created-at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id generation. The only contract is uniqueness
// within a collection's lifetime.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates an empty store over the given adapter. Call Load to read the
// persisted collections (and bootstrap samples on first run).
func New(adapter kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:     adapter,
		logger: log.New(log.DefaultConfig()).WithComponent(log.ComponentStore),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads both collections from the adapter. A collection that is
// absent, corrupt, or empty is seeded with the built-in sample records and
// persisted immediately. Load never fails; it degrades to the samples.
func (s *Store) Load(ctx context.Context) {
	s.tasks = loadCollection[core.Task](ctx, s, kv.KeyTasks)
	if len(s.tasks) == 0 {
		s.logger.Info("seeding sample tasks",
			log.FieldOperation, log.OpBootstrap, log.FieldCount, len(SampleTasks()))
		s.tasks = SampleTasks()
		s.saveTasks(ctx)
	}

	s.expenses = loadCollection[core.Expense](ctx, s, kv.KeyExpenses)
	if len(s.expenses) == 0 {
		s.logger.Info("seeding sample expenses",
			log.FieldOperation, log.OpBootstrap, log.FieldCount, len(SampleExpenses()))
		s.expenses = SampleExpenses()
		s.saveExpenses(ctx)
	}
}

func loadCollection[T any](ctx context.Context, s *Store, key string) []T {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("read failed, falling back to empty collection",
			log.FieldOperation, log.OpLoad, log.FieldKey, key, log.FieldError, err)
		return nil
	}
	if !found {
		return nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt payloads are treated the same as absent keys
		s.logger.Warn("corrupt stored data, falling back to empty collection",
			log.FieldOperation, log.OpLoad, log.FieldKey, key, log.FieldError, err)
		return nil
	}
	return records
}

func (s *Store) saveTasks(ctx context.Context) {
	s.saveCollection(ctx, kv.KeyTasks, s.tasks)
}

func (s *Store) saveExpenses(ctx context.Context) {
	s.saveCollection(ctx, kv.KeyExpenses, s.expenses)
}

// saveCollection writes the entire collection unconditionally. A failed
// write leaves memory authoritative and unsynced until the next save.
func (s *Store) saveCollection(ctx context.Context, key string, records any) {
	raw, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("serialize failed, collection not persisted",
			log.FieldOperation, log.OpSave, log.FieldKey, key, log.FieldError, err)
		return
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.logger.Warn("write failed, collection unsynced",
			log.FieldOperation, log.OpSave, log.FieldKey, key, log.FieldError, err)
	}
}

// AddTask appends a new pending task and persists the collection.
func (s *Store) AddTask(ctx context.Context, text string, priority core.Priority) (core.Task, error) {
	task := core.Task{
		ID:        s.newID(),
		Text:      strings.TrimSpace(text),
		Priority:  priority,
		Done:      false,
		CreatedAt: s.now(),
	}
	if err := task.Validate(); err != nil {
		return core.Task{}, err
	}
	s.tasks = append(s.tasks, task)
	s.saveTasks(ctx)
	s.logger.Debug("task added",
		log.FieldOperation, log.OpAdd, log.FieldTaskID, task.ID, log.FieldTaskText, task.Text)
	return task, nil
}

// ToggleTask flips the done flag of the matching task. Unknown ids are a
// no-op, not an error.
func (s *Store) ToggleTask(ctx context.Context, id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			s.saveTasks(ctx)
			s.logger.Debug("task toggled",
				log.FieldOperation, log.OpToggle, log.FieldTaskID, id, "done", s.tasks[i].Done)
			return
		}
	}
}

// DeleteTask removes the matching task. Idempotent: unknown ids are a no-op.
func (s *Store) DeleteTask(ctx context.Context, id string) {
	kept := s.tasks[:0]
	removed := false
	for _, task := range s.tasks {
		if task.ID == id {
			removed = true
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	if removed {
		s.saveTasks(ctx)
		s.logger.Debug("task deleted", log.FieldOperation, log.OpDelete, log.FieldTaskID, id)
	}
}

// ClearTasks empties the task collection unconditionally.
func (s *Store) ClearTasks(ctx context.Context) {
	s.tasks = []core.Task{}
	s.saveTasks(ctx)
	s.logger.Info("tasks cleared", log.FieldOperation, log.OpClear)
}

// AddExpense converts the decimal amount to cents, normalizes the date and
// appends a new expense. Empty date means today.
func (s *Store) AddExpense(ctx context.Context, description, amount string, category core.Category, date string) (core.Expense, error) {
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.Expense{}, err
	}
	normalized, err := core.NormalizeDate(date)
	if err != nil {
		return core.Expense{}, err
	}
	expense := core.Expense{
		ID:          s.newID(),
		Description: strings.TrimSpace(description),
		Amount:      core.Money{Cents: cents},
		Category:    category,
		Date:        normalized,
	}
	if err := expense.Validate(); err != nil {
		return core.Expense{}, err
	}
	s.expenses = append(s.expenses, expense)
	s.saveExpenses(ctx)
	s.logger.Debug("expense added",
		log.FieldOperation, log.OpAdd,
		log.FieldExpenseID, expense.ID,
		log.FieldAmountCents, expense.Amount.Cents,
		log.FieldCategory, string(expense.Category))
	return expense, nil
}

// DeleteExpense removes the matching expense. Idempotent like DeleteTask.
func (s *Store) DeleteExpense(ctx context.Context, id string) {
	kept := s.expenses[:0]
	removed := false
	for _, expense := range s.expenses {
		if expense.ID == id {
			removed = true
			continue
		}
		kept = append(kept, expense)
	}
	s.expenses = kept
	if removed {
		s.saveExpenses(ctx)
		s.logger.Debug("expense deleted", log.FieldOperation, log.OpDelete, log.FieldExpenseID, id)
	}
}

// ClearExpenses empties the expense collection unconditionally.
func (s *Store) ClearExpenses(ctx context.Context) {
	s.expenses = []core.Expense{}
	s.saveExpenses(ctx)
	s.logger.Info("expenses cleared", log.FieldOperation, log.OpClear)
}

// SetTaskSearch sets the case-insensitive substring filter on task text.
func (s *Store) SetTaskSearch(search string) {
	s.filters.TaskSearch = search
}

// SetExpenseCategoryFilter sets the exact-match category filter.
// An empty category disables the filter.
func (s *Store) SetExpenseCategoryFilter(category core.Category) {
	s.filters.ExpenseCategory = category
}

// SetExpenseMonthFilter sets the YYYY-MM prefix filter on expense dates.
// An empty month disables the filter.
func (s *Store) SetExpenseMonthFilter(month string) {
	s.filters.ExpenseMonth = month
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []core.Task {
	return append([]core.Task(nil), s.tasks...)
}

// Expenses returns a copy of the expense collection in insertion order.
func (s *Store) Expenses() []core.Expense {
	return append([]core.Expense(nil), s.expenses...)
}

// Filters returns the current filter state.
func (s *Store) Filters() Filters {
	return s.filters
}
