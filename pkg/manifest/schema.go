package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/manifest.schema.json
var manifestSchemaBytes []byte

//go:embed schema/bin.schema.json
var binSchemaBytes []byte

type schemas struct {
	manifest *jsonschema.Schema
	bin      *jsonschema.Schema
}

var (
	compiled    schemas
	compileOnce sync.Once
	compileErr  error
	printer     = message.NewPrinter(language.English)
)

// getSchemas compiles the embedded JSON schemas once and returns them.
func getSchemas() (schemas, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for _, res := range []struct {
			url  string
			data []byte
		}{
			{"manifest.schema.json", manifestSchemaBytes},
			{"bin.schema.json", binSchemaBytes},
		} {
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(res.data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", res.url, err)
				return
			}
			if err := c.AddResource(res.url, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", res.url, err)
				return
			}
		}

		if compiled.manifest, compileErr = c.Compile("manifest.schema.json"); compileErr != nil {
			compileErr = fmt.Errorf("compiling manifest schema: %w", compileErr)
			return
		}
		if compiled.bin, compileErr = c.Compile("bin.schema.json"); compileErr != nil {
			compileErr = fmt.Errorf("compiling bin schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// issues flattens a validation error tree into its leaf messages.
func issues(err error) []string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	seen := make(map[string]bool)
	collectIssues(ve, &out, seen)
	if len(out) == 0 {
		return []string{ve.Error()}
	}
	return out
}

func collectIssues(ve *jsonschema.ValidationError, out *[]string, seen map[string]bool) {
	if len(ve.Causes) == 0 {
		if ve.ErrorKind == nil {
			return
		}
		msg := ve.ErrorKind.LocalizedString(printer)
		if len(ve.InstanceLocation) > 0 {
			msg = "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
		}
		if !seen[msg] {
			seen[msg] = true
			*out = append(*out, msg)
		}
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, out, seen)
	}
}
