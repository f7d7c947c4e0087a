package domain

// Column indices (0-based) within the ranges read from each tab.
const (
	// QU tab, range A1:C
	QUInitialsColumn = 1 // column B
	QUDateColumn     = 2 // column C

	// PQ tab, range A3:E
	PQInitialsColumn = 2 // column C
	PQETAColumn      = 4 // column E
)

// First data row (1-based) of each tab.
const (
	QUStartRow = 1
	PQStartRow = 3
)

// DefaultStaleDays is the age threshold after which a QU counts as stale.
const DefaultStaleDays = 7
