package dispatch

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total      int
	Current    int
	Dispatched int
	Skipped    int
	Failed     int
}
