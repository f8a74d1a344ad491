package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/binlink/pkg/errors"
	"github.com/arthur-debert/binlink/pkg/logging"
	"github.com/arthur-debert/binlink/pkg/types"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const binField = "bin"

// Reader reads dependency manifests through a types.FS
type Reader struct {
	fs types.FS
}

// NewReader creates a manifest Reader
func NewReader(fs types.FS) *Reader {
	return &Reader{fs: fs}
}

// Declarations returns the executables entry declares. A missing or
// unparsable manifest, or a bin field of the wrong shape, yields no
// declarations and an error naming the dependency.
func (r *Reader) Declarations(entry types.Entry) ([]types.Declaration, error) {
	bin, err := r.ReadBin(entry)
	if err != nil {
		return nil, err
	}
	return bin.Declarations(entry), nil
}

// ReadBin reads and classifies entry's bin field. For BinInvalid the
// returned Bin is accompanied by an ErrBinInvalid error.
func (r *Reader) ReadBin(entry types.Entry) (Bin, error) {
	logger := logging.GetLogger("manifest").With().Str("dependency", entry.FullName()).Logger()

	data, err := r.fs.ReadFile(entry.ManifestPath)
	if err != nil {
		return Bin{}, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest of %s", entry.FullName()).
			WithDetail("dependency", entry.FullName()).
			WithDetail("path", entry.ManifestPath)
	}

	bin, err := Parse(data)
	if errors.IsErrorCode(err, errors.ErrBinInvalid) {
		details := errors.GetErrorDetails(err)
		logger.Debug().Interface("issues", details["issues"]).Msg("Invalid bin field")
		return bin, errors.Newf(errors.ErrBinInvalid,
			"invalid bin field in %s: expected a path string or an object of paths, got %s",
			entry.FullName(), bin.Got).
			WithDetail("dependency", entry.FullName()).
			WithDetail("path", entry.ManifestPath).
			WithDetail("issues", details["issues"])
	}
	if err != nil {
		return Bin{}, errors.Wrapf(err, errors.ErrManifestParse, "cannot parse manifest of %s", entry.FullName()).
			WithDetail("dependency", entry.FullName()).
			WithDetail("path", entry.ManifestPath)
	}

	logger.Trace().Stringer("kind", bin.Kind).Msg("Read bin field")
	return bin, nil
}

// Parse classifies the bin field of a manifest document.
func Parse(data []byte) (Bin, error) {
	s, err := getSchemas()
	if err != nil {
		return Bin{}, errors.Wrap(err, errors.ErrInternal, "manifest schemas unavailable")
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Bin{}, errors.Wrap(err, errors.ErrManifestParse, "invalid JSON")
	}
	if err := s.manifest.Validate(inst); err != nil {
		return Bin{}, errors.Newf(errors.ErrManifestParse, "manifest must be a JSON object, got %s", jsonType(inst)).
			WithDetail("issues", issues(err))
	}

	// An empty string declares nothing, like null
	value, ok := inst.(map[string]any)[binField]
	if !ok || value == nil || value == "" {
		return Bin{Kind: BinNone}, nil
	}

	if err := s.bin.Validate(value); err != nil {
		bin := Bin{Kind: BinInvalid, Got: jsonType(value)}
		return bin, errors.Newf(errors.ErrBinInvalid, "bin is %s", bin.Got).
			WithDetail("issues", issues(err))
	}

	switch v := value.(type) {
	case string:
		return Bin{Kind: BinSingle, Path: v}, nil
	case map[string]any:
		named, err := orderedDeclarations(data)
		if err != nil {
			return Bin{}, errors.Wrap(err, errors.ErrManifestParse, "cannot read bin entries")
		}
		return Bin{Kind: BinNamed, Named: named}, nil
	}

	// Unreachable while the bin schema only admits null, string and object
	return Bin{Kind: BinInvalid, Got: jsonType(value)}, errors.Newf(errors.ErrBinInvalid, "bin is %s", jsonType(value))
}

// orderedDeclarations re-reads the bin object keeping key order, which the
// decoded map loses. Duplicate keys keep their first position and last value.
func orderedDeclarations(data []byte) ([]types.Declaration, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(doc[binField]))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var decls []types.Declaration
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var path string
		if err := dec.Decode(&path); err != nil {
			return nil, err
		}
		if i, seen := index[name]; seen {
			decls[i].Path = path
			continue
		}
		index[name] = len(decls)
		decls = append(decls, types.Declaration{Name: name, Path: path})
	}
	return decls, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object with non-path values"
	}
	return fmt.Sprintf("%T", v)
}
