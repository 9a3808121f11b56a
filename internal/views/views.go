// Package views computes the read side of the organizer: filtered and
// sorted task/expense sequences plus aggregate statistics. Everything here
// works on snapshots and mutates nothing.
package views

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"organizador/internal/core"
	"organizador/internal/store"
)

// DefaultLocale drives text collation when no locale is configured.
const DefaultLocale = "es-ES"

// TaskStats counts the whole task collection, ignoring any active search.
type TaskStats struct {
	Total     int
	Completed int
	Pending   int
}

// ExpenseStats totals the whole expense collection. Monthly always covers
// the true current calendar month, independent of the active month filter.
type ExpenseStats struct {
	Total   core.Money
	Monthly core.Money
}

// Engine carries the locale collator and the clock; it holds no data.
type Engine struct {
	collator *collate.Collator
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the BCP-47 locale used for task text ordering.
// Unparseable tags fall back to the default locale.
func WithLocale(locale string) Option {
	return func(e *Engine) {
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.MustParse(DefaultLocale)
		}
		e.collator = collate.New(tag)
	}
}

// WithClock overrides the time source used to resolve the current month.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		collator: collate.New(language.MustParse(DefaultLocale)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SortTasks orders tasks pending-first, then by priority rank descending,
// then by locale-aware comparison of the text. The sort is stable.
func (e *Engine) SortTasks(tasks []core.Task) []core.Task {
	sorted := append([]core.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Done != b.Done {
			return !a.Done
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		return e.collator.CompareString(a.Text, b.Text) < 0
	})
	return sorted
}

// FilteredTasks applies the case-insensitive search filter and sorts the
// survivors.
func (e *Engine) FilteredTasks(tasks []core.Task, search string) []core.Task {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return e.SortTasks(tasks)
	}
	matched := make([]core.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Text), needle) {
			matched = append(matched, task)
		}
	}
	return e.SortTasks(matched)
}

// CalculateTaskStats counts the full collection; the search filter never
// changes these numbers.
func (e *Engine) CalculateTaskStats(tasks []core.Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Done {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// FilteredExpenses applies the category and month filters, then sorts by
// date descending. Expenses sharing a date keep their insertion order.
func (e *Engine) FilteredExpenses(expenses []core.Expense, filters store.Filters) []core.Expense {
	matched := make([]core.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if filters.ExpenseCategory != "" && expense.Category != filters.ExpenseCategory {
			continue
		}
		if filters.ExpenseMonth != "" && !core.InMonth(expense.Date, filters.ExpenseMonth) {
			continue
		}
		matched = append(matched, expense)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return matched
}

// CalculateExpenseStats sums the entire unfiltered collection. Changing the
// active filters must never move these numbers; only the true calendar
// month drives Monthly.
func (e *Engine) CalculateExpenseStats(expenses []core.Expense) ExpenseStats {
	month := core.CurrentMonth(e.now())
	var stats ExpenseStats
	for _, expense := range expenses {
		stats.Total = stats.Total.Add(expense.Amount)
		if core.InMonth(expense.Date, month) {
			stats.Monthly = stats.Monthly.Add(expense.Amount)
		}
	}
	return stats
}

// CalculateCategoryTotals sums the filtered expense set per category. Every
// known category is present in the result, zero-valued when nothing
// matched.
func (e *Engine) CalculateCategoryTotals(expenses []core.Expense, filters store.Filters) map[core.Category]core.Money {
	totals := make(map[core.Category]core.Money, len(core.Categories()))
	for _, category := range core.Categories() {
		totals[category] = core.Money{}
	}
	for _, expense := range e.FilteredExpenses(expenses, filters) {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}
	return totals
}
