package sorting

// Table holds the sort state of one table view. It replaces per view
// mutable state with an explicit value: callers toggle columns and ask for
// the current order of whatever rows they hold.
type Table[T any] struct {
	initial Config
	config  Config
	extract Extractor[T]
}

// NewTable creates the sort state of a table view starting at initial. A
// nil extractor falls back to Field.
func NewTable[T any](initial Config, extract Extractor[T]) *Table[T] {
	initial = initial.Normalize()

	return &Table[T]{
		initial: initial,
		config:  initial,
		extract: extract,
	}
}

// Config returns the current sort state.
func (t *Table[T]) Config() Config {
	return t.config
}

// SetConfig replaces the current sort state.
func (t *Table[T]) SetConfig(cfg Config) {
	t.config = cfg.Normalize()
}

// Reset restores the sort state the table was created with.
func (t *Table[T]) Reset() {
	t.config = t.initial
}

// Toggle advances the sort state for an activated column header and
// returns the new state.
func (t *Table[T]) Toggle(key string) Config {
	t.config = Toggle(t.config, key)
	return t.config
}

// Icon returns the header indicator of column key.
func (t *Table[T]) Icon(key string) SortIcon {
	return Icon(t.config, key)
}

// CurrentOrder returns a sorted copy of rows for the current sort state.
func (t *Table[T]) CurrentOrder(rows []T) []T {
	return SortData(rows, t.config, t.extract)
}

// Value extracts the sort value of column key from item with the table's
// extractor.
func (t *Table[T]) Value(item T, key string) Value {
	if t.extract == nil {
		return Field(item, key)
	}

	return t.extract(item, key)
}
