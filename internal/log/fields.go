package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldKey         = "key"
	FieldBackend     = "backend"
	FieldTaskID      = "task_id"
	FieldExpenseID   = "expense_id"
	FieldTaskText    = "task_text"
	FieldExpenseDesc = "expense_description"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldMonth       = "month"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentViews   = "views"
	ComponentKV      = "kv"
	ComponentBackend = "backend"
	ComponentConfig  = "config"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpAdd       = "add"
	OpToggle    = "toggle"
	OpDelete    = "delete"
	OpClear     = "clear"
	OpLoad      = "load"
	OpSave      = "save"
	OpBootstrap = "bootstrap"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
