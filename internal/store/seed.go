package store

import (
	"time"

	"organizador/internal/core"
)

var sampleCreatedAt = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// SampleTasks is the fixed first-run dataset for the task collection.
// Content is deterministic: same ids, text and order on every bootstrap.
func SampleTasks() []core.Task {
	return []core.Task{
		{
			ID:        "sample-task-1",
			Text:      "Comprar fruta y verdura",
			Priority:  core.PriorityMedium,
			Done:      false,
			CreatedAt: sampleCreatedAt,
		},
		{
			ID:        "sample-task-2",
			Text:      "Pagar el alquiler",
			Priority:  core.PriorityHigh,
			Done:      false,
			CreatedAt: sampleCreatedAt.Add(time.Minute),
		},
		{
			ID:        "sample-task-3",
			Text:      "Llamar al taller",
			Priority:  core.PriorityLow,
			Done:      true,
			CreatedAt: sampleCreatedAt.Add(2 * time.Minute),
		},
	}
}

// SampleExpenses is the fixed first-run dataset for the expense collection.
func SampleExpenses() []core.Expense {
	return []core.Expense{
		{
			ID:          "sample-expense-1",
			Description: "Alquiler marzo",
			Amount:      core.Money{Cents: 65000},
			Category:    core.CategoryFixed,
			Date:        "2024-03-01",
		},
		{
			ID:          "sample-expense-2",
			Description: "Supermercado",
			Amount:      core.Money{Cents: 4567},
			Category:    core.CategoryFood,
			Date:        "2024-03-05",
		},
		{
			ID:          "sample-expense-3",
			Description: "Gasolina",
			Amount:      core.Money{Cents: 5200},
			Category:    core.CategoryVehicle,
			Date:        "2024-03-08",
		},
	}
}
