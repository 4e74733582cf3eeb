package convert

// Notifier receives per-file events during a batch run. Failures are
// surfaced as they occur; a single file's failure never stops the run.
// With Workers > 1 the callbacks arrive unordered and must be safe for
// concurrent use.
type Notifier interface {
	// Converted reports a successful conversion.
	Converted(inputPath, outputPath string, res Result)

	// Failed reports a per-file conversion failure.
	Failed(inputPath string, err error)

	// Skipped reports an entry passed over because its extension is not
	// a supported format. Only called when Config.ReportSkipped is set.
	Skipped(inputPath string)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) Converted(string, string, Result) {}
func (NopNotifier) Failed(string, error)             {}
func (NopNotifier) Skipped(string)                   {}
