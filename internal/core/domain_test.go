package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in  string
		out Priority
		ok  bool
	}{
		{"high", PriorityHigh, true},
		{"HIGH", PriorityHigh, true},
		{" medium ", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"urgent", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParsePriority(tc.in)
		if tc.ok && (err != nil || got != tc.out) {
			t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() <= PriorityMedium.Rank() || PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Fatalf("priority ranks out of order: high=%d medium=%d low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if Priority("bogus").Rank() != 0 {
		t.Fatalf("unknown priority should rank 0")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Fatalf("%q expected ok, got %q (err=%v)", c, got, err)
		}
	}
	if _, err := ParseCategory("groceries"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestCategoriesStableOrder(t *testing.T) {
	want := []Category{CategoryFixed, CategoryLeisure, CategoryFood, CategoryVehicle, CategoryOther}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTaskValidate(t *testing.T) {
	good := Task{ID: "1", Text: "pay rent", Priority: PriorityHigh, CreatedAt: time.Now()}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Task{
		{ID: "1", Text: "", Priority: PriorityHigh},
		{ID: "1", Text: "   ", Priority: PriorityHigh},
		{ID: "1", Text: "a", Priority: "urgent"},
	}
	for i, task := range bads {
		if err := task.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:          "1",
		Description: "groceries",
		Amount:      Money{Cents: 4250},
		Category:    CategoryFood,
		Date:        "2024-03-15",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Description: "", Amount: Money{Cents: 1}, Category: CategoryFood, Date: "2024-03-15"},
		{Description: "a", Amount: Money{Cents: -1}, Category: CategoryFood, Date: "2024-03-15"},
		{Description: "a", Amount: Money{Cents: 1}, Category: "groceries", Date: "2024-03-15"},
		{Description: "a", Amount: Money{Cents: 1}, Category: CategoryFood, Date: "15/03/2024"},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseJSONRoundTrip(t *testing.T) {
	in := Expense{
		ID:          "abc",
		Description: "fuel",
		Amount:      Money{Cents: 6500},
		Category:    CategoryVehicle,
		Date:        "2024-03-15",
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Expense
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestMoneyMarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(Expense{Amount: Money{Cents: 4567}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, ok := fields["amountCents"].(float64); !ok || got != 4567 {
		t.Fatalf("amountCents should be the bare number 4567, got %v", fields["amountCents"])
	}
}
