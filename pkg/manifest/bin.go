package manifest

import "github.com/arthur-debert/binlink/pkg/types"

// BinKind tags the shape of a manifest's bin field
type BinKind int

const (
	// BinNone means the field is absent or null
	BinNone BinKind = iota
	// BinSingle is a lone path; the link takes the dependency's name
	BinSingle
	// BinNamed maps link names to paths
	BinNamed
	// BinInvalid is any other shape
	BinInvalid
)

func (k BinKind) String() string {
	switch k {
	case BinNone:
		return "none"
	case BinSingle:
		return "single"
	case BinNamed:
		return "named"
	case BinInvalid:
		return "invalid"
	}
	return "unknown"
}

// Bin is a classified bin field
type Bin struct {
	Kind BinKind

	// Path is set for BinSingle
	Path string

	// Named is set for BinNamed, in document order
	Named []types.Declaration

	// Got describes the offending JSON type for BinInvalid
	Got string
}

// Declarations expands the bin field for the dependency that declared it.
func (b Bin) Declarations(entry types.Entry) []types.Declaration {
	switch b.Kind {
	case BinSingle:
		return []types.Declaration{{Name: entry.Name, Path: b.Path}}
	case BinNamed:
		return b.Named
	case BinNone, BinInvalid:
		return nil
	}
	return nil
}
