package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"organizador/internal/cli"
	"organizador/internal/config"
	"organizador/internal/core"
	"organizador/internal/log"
	"organizador/internal/store"
	"organizador/internal/views"
)

const usage = `Usage: organizador <command> [flags]

Commands:
  tasks list        list tasks (-search substring)
  tasks add         add a task (-text, -priority high|medium|low)
  tasks toggle      toggle a task done/pending (-id)
  tasks delete      delete a task (-id)
  tasks clear       delete every task
  expenses list     list expenses (-category, -month YYYY-MM)
  expenses add      add an expense (-desc, -amount, -category, -date YYYY-MM-DD)
  expenses delete   delete an expense (-id)
  expenses clear    delete every expense
  stats             show task and expense statistics (-category, -month)
`

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(level)
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	result := cli.InitBackend(logger, cfg)
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Warn("backend cleanup failed", log.FieldError, err)
			}
		}
	}()

	ctx := context.Background()
	records := store.New(result.Store, store.WithLogger(logger))
	records.Load(ctx)

	engine := views.NewEngine(views.WithLocale(cfg.Locale))
	app := &app{
		store:   records,
		engine:  engine,
		printer: newPrinter(cfg.Locale),
		cfg:     cfg,
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	store   *store.Store
	engine  *views.Engine
	printer *message.Printer
	cfg     *config.Config
}

func newPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(views.DefaultLocale)
	}
	return message.NewPrinter(tag)
}

func (a *app) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "tasks":
		return a.runTasks(ctx, args[1:])
	case "expenses":
		return a.runExpenses(ctx, args[1:])
	case "stats":
		return a.runStats(args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[0], usage)
	}
}

func (a *app) runTasks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("tasks list", flag.ContinueOnError)
		search := fs.String("search", "", "case-insensitive substring filter")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		a.store.SetTaskSearch(*search)
		a.printTasks()
		return nil
	case "add":
		fs := flag.NewFlagSet("tasks add", flag.ContinueOnError)
		text := fs.String("text", "", "task text")
		priority := fs.String("priority", "medium", "high, medium or low")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		p, err := core.ParsePriority(*priority)
		if err != nil {
			return err
		}
		task, err := a.store.AddTask(ctx, *text, p)
		if err != nil {
			return err
		}
		fmt.Printf("added task %s\n", task.ID)
		return nil
	case "toggle":
		fs := flag.NewFlagSet("tasks toggle", flag.ContinueOnError)
		id := fs.String("id", "", "task id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		a.store.ToggleTask(ctx, *id)
		return nil
	case "delete":
		fs := flag.NewFlagSet("tasks delete", flag.ContinueOnError)
		id := fs.String("id", "", "task id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		a.store.DeleteTask(ctx, *id)
		return nil
	case "clear":
		a.store.ClearTasks(ctx)
		return nil
	default:
		return fmt.Errorf("unknown tasks subcommand %q", args[0])
	}
}

func (a *app) runExpenses(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("expenses list", flag.ContinueOnError)
		category := fs.String("category", "", "exact-match category filter")
		month := fs.String("month", "", "YYYY-MM month filter")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.applyExpenseFilters(*category, *month); err != nil {
			return err
		}
		a.printExpenses()
		return nil
	case "add":
		fs := flag.NewFlagSet("expenses add", flag.ContinueOnError)
		desc := fs.String("desc", "", "expense description")
		amount := fs.String("amount", "", "decimal amount, e.g. 45.67")
		category := fs.String("category", "other", "fixed, leisure, food, vehicle or other")
		date := fs.String("date", "", "YYYY-MM-DD, empty for today")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		c, err := core.ParseCategory(*category)
		if err != nil {
			return err
		}
		expense, err := a.store.AddExpense(ctx, *desc, *amount, c, *date)
		if err != nil {
			return err
		}
		fmt.Printf("added expense %s\n", expense.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("expenses delete", flag.ContinueOnError)
		id := fs.String("id", "", "expense id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		a.store.DeleteExpense(ctx, *id)
		return nil
	case "clear":
		a.store.ClearExpenses(ctx)
		return nil
	default:
		return fmt.Errorf("unknown expenses subcommand %q", args[0])
	}
}

func (a *app) runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	category := fs.String("category", "", "category filter for per-category totals")
	month := fs.String("month", "", "YYYY-MM month filter for per-category totals")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.applyExpenseFilters(*category, *month); err != nil {
		return err
	}

	taskStats := a.engine.CalculateTaskStats(a.store.Tasks())
	fmt.Printf("tasks: %d total, %d completed, %d pending\n",
		taskStats.Total, taskStats.Completed, taskStats.Pending)

	expenses := a.store.Expenses()
	expenseStats := a.engine.CalculateExpenseStats(expenses)
	fmt.Printf("expenses: %s total, %s this month\n",
		a.money(expenseStats.Total), a.money(expenseStats.Monthly))

	totals := a.engine.CalculateCategoryTotals(expenses, a.store.Filters())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, c := range core.Categories() {
		fmt.Fprintf(w, "  %s\t%s\n", c, a.money(totals[c]))
	}
	return w.Flush()
}

func (a *app) applyExpenseFilters(category, month string) error {
	if category != "" {
		c, err := core.ParseCategory(category)
		if err != nil {
			return err
		}
		a.store.SetExpenseCategoryFilter(c)
	}
	a.store.SetExpenseMonthFilter(month)
	return nil
}

func (a *app) printTasks() {
	tasks := a.engine.FilteredTasks(a.store.Tasks(), a.store.Filters().TaskSearch)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, task := range tasks {
		mark := " "
		if task.Done {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s]\t%s\t%s\t%s\n", mark, task.Priority, task.Text, task.ID)
	}
	w.Flush()
}

func (a *app) printExpenses() {
	expenses := a.engine.FilteredExpenses(a.store.Expenses(), a.store.Filters())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, expense := range expenses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			expense.Date, a.money(expense.Amount), expense.Category, expense.Description, expense.ID)
	}
	w.Flush()
}

// money renders an amount with locale-aware number formatting and the
// configured currency code. Display conversion to euros happens here only.
func (a *app) money(m core.Money) string {
	return a.printer.Sprintf("%.2f %s", m.Euros(), a.cfg.CurrencyCode)
}
