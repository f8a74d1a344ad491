package resolver

import "github.com/arthur-debert/binlink/pkg/types"

// Item is one reportable outcome of a run, in the order it happened.
// Exactly one of Link and Err is set.
type Item struct {
	// Link is set for every declaration that reached the linker
	Link *types.LinkResult

	// Err is set for a dependency or scope that yielded no declarations
	// because its manifest or directory could not be used
	Err error
}

// Report collects everything a run did
type Report struct {
	ProjectDir string
	BinDir     string
	DryRun     bool

	// Dependencies counts entries enumerated, with or without declarations
	Dependencies int

	Items []Item
}

// Summary counts a report's items by outcome
type Summary struct {
	Created  int
	Replaced int
	Skipped  int
	Planned  int
	Failed   int
	Errors   int
}

// Summary tallies the report. Failed links count under Failed, not Errors.
func (r *Report) Summary() Summary {
	var s Summary
	for _, item := range r.Items {
		if item.Err != nil {
			s.Errors++
			continue
		}
		switch item.Link.Status {
		case types.LinkCreated:
			s.Created++
		case types.LinkReplaced:
			s.Replaced++
		case types.LinkSkipped:
			s.Skipped++
		case types.LinkPlanned:
			s.Planned++
		case types.LinkFailed:
			s.Failed++
		}
	}
	return s
}

// Errors returns every per-item error in order, including failed links
func (r *Report) Errors() []error {
	var errs []error
	for _, item := range r.Items {
		switch {
		case item.Err != nil:
			errs = append(errs, item.Err)
		case item.Link.Err != nil:
			errs = append(errs, item.Link.Err)
		}
	}
	return errs
}
