package ports

// Progress reports how many units of work have completed.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	// Start announces the total number of units.
	Start(total int)

	// Inc marks the unit called name as complete. Safe for concurrent use.
	Inc(name string)

	// Finish clears the indicator.
	Finish()
}
