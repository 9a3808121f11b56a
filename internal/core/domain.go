package core

import (
	"errors"
	"strings"
	"time"
)

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	CategoryFixed   Category = "fixed"
	CategoryLeisure Category = "leisure"
	CategoryFood    Category = "food"
	CategoryVehicle Category = "vehicle"
	CategoryOther   Category = "other"
)

type (
	// Priority is a task priority level.
	Priority string

	// Category is an expense category.
	Category string

	Task struct {
		ID        string    `json:"id"`
		Text      string    `json:"text"`
		Priority  Priority  `json:"priority"`
		Done      bool      `json:"done"`
		CreatedAt time.Time `json:"createdAt"`
	}

	Expense struct {
		ID          string   `json:"id"`
		Description string   `json:"description"`
		Amount      Money    `json:"amountCents"`
		Category    Category `json:"category"`
		Date        string   `json:"dateISO"` // YYYY-MM-DD
	}
)

var (
	ErrEmptyText        = errors.New("empty task text")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidDate      = errors.New("invalid date")
)

// Rank maps priorities to a comparable weight: high=3, medium=2, low=1.
// Unknown priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority converts user input to a Priority, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFixed, CategoryLeisure, CategoryFood, CategoryVehicle, CategoryOther:
		return true
	default:
		return false
	}
}

// ParseCategory converts user input to a Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Categories returns every known category in stable aggregation order.
func Categories() []Category {
	return []Category{CategoryFixed, CategoryLeisure, CategoryFood, CategoryVehicle, CategoryOther}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.IsValid() {
		return ErrInvalidCategory
	}
	if _, err := NormalizeDate(e.Date); err != nil {
		return err
	}
	return nil
}
