package types

// LinkStatus represents the outcome of materializing one declaration
type LinkStatus string

const (
	// LinkCreated indicates a new symlink was written
	LinkCreated LinkStatus = "created"

	// LinkReplaced indicates an existing entry was removed and the symlink recreated
	LinkReplaced LinkStatus = "replaced"

	// LinkSkipped indicates an entry already existed and overwrite was off
	LinkSkipped LinkStatus = "skipped"

	// LinkPlanned indicates a dry run computed the link without writing it
	LinkPlanned LinkStatus = "planned"

	// LinkFailed indicates the filesystem refused the link
	LinkFailed LinkStatus = "failed"
)

// LinkResult describes what happened to one declaration
type LinkResult struct {
	Dependency  Entry
	Declaration Declaration

	// LinkPath is where the symlink lives
	LinkPath string

	// Target is the symlink's content, relative to the link's directory
	Target string

	// Existed is true when something was already at LinkPath
	Existed bool

	Status LinkStatus
	Err    error
}
