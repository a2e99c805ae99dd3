package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchemaJSON constrains a claudio settings document. Unknown
// top-level keys (lastProject and future additions) are allowed.
const documentSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "projects": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "env": {
            "type": "object",
            "additionalProperties": {"type": "string"}
          }
        }
      }
    },
    "lastProject": {"type": "string"}
  }
}`

var documentSchema = jsonschema.MustCompileString("claudio.settings.schema.json", documentSchemaJSON)

// Load reads and validates a single settings file. The path must exist.
// A file without a projects key is valid and returns a document with
// HasProjects unset.
func Load(path string, scope Scope) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}

	doc := &Document{Path: path, Scope: scope}
	projectsRaw, ok := raw["projects"]
	if !ok {
		return doc, nil
	}

	var instance interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}
	if err := documentSchema.Validate(instance); err != nil {
		return nil, &MalformedConfigError{Path: path, Detail: schemaErrorDetail(err), Err: err}
	}

	if err := json.Unmarshal(projectsRaw, &doc.Projects); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}
	doc.HasProjects = true

	seen := make(map[string]bool, len(doc.Projects))
	for i := range doc.Projects {
		name := doc.Projects[i].Name
		if seen[name] {
			return nil, &MalformedConfigError{
				Path:   path,
				Detail: fmt.Sprintf("projects[%d].name: duplicate project name %q", i, name),
			}
		}
		seen[name] = true
		if doc.Projects[i].Env == nil {
			doc.Projects[i].Env = map[string]string{}
		}
	}

	return doc, nil
}

// LoadAll loads every discovered layer, preserving order. The first invalid
// file aborts the whole load.
func LoadAll(layers []Layer) ([]*Document, error) {
	docs := make([]*Document, 0, len(layers))
	for _, layer := range layers {
		doc, err := Load(layer.Path, layer.Scope)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// schemaErrorDetail extracts the deepest cause of a schema validation error
// as a "field path: message" string.
func schemaErrorDetail(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	leaf := deepestCause(ve)
	path := jsonPointerToPath(leaf.InstanceLocation)
	if path == "" {
		return leaf.Message
	}
	return fmt.Sprintf("%s: %s", path, leaf.Message)
}

func deepestCause(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return err
}

// jsonPointerToPath converts a JSON Pointer (RFC 6901) to dot notation,
// e.g. "/projects/0/name" becomes "projects[0].name".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path string
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
