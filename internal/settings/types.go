package settings

// Scope identifies one precedence tier of configuration.
type Scope string

const (
	// ScopeUser is the user-level tier (~/.claude), lowest precedence.
	ScopeUser Scope = "user"
	// ScopeProject is the shared project tier (<root>/.claude).
	ScopeProject Scope = "project"
	// ScopeProjectLocal is the local project tier, highest precedence.
	ScopeProjectLocal Scope = "project-local"
)

// Project is a named bundle of environment-variable overrides a user can
// select at launch time.
type Project struct {
	Name string            `json:"name"`
	Env  map[string]string `json:"env,omitempty"`
}

// Layer is a candidate settings file within one scope.
type Layer struct {
	Scope Scope
	Path  string
}

// Document is one parsed claudio settings file. A document without a
// projects key is valid; it simply does not participate in selection.
type Document struct {
	Path        string
	Scope       Scope
	HasProjects bool
	Projects    []Project
}
