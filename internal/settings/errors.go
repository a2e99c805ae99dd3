package settings

import "fmt"

// MalformedConfigError reports a settings file that is not valid JSON or
// violates the document schema. Detail, when set, names the offending field
// in dot notation (e.g. "projects[1].name").
type MalformedConfigError struct {
	Path   string
	Detail string
	Err    error
}

func (e *MalformedConfigError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("malformed settings file %s: %s", e.Path, e.Detail)
	}
	return fmt.Sprintf("malformed settings file %s: %v", e.Path, e.Err)
}

func (e *MalformedConfigError) Unwrap() error {
	return e.Err
}

// PersistError reports a failed write of the merged Claude settings. The
// launch must not happen after one of these.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist settings file %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
