// Package settings discovers, loads, validates, and merges claudio settings
// documents across the .claude configuration hierarchy, and performs the
// read-modify-write of the Claude Code settings env block.
//
// Discovery walks a fixed precedence order, lowest first:
//
//	~/.claude/claudio.settings.json              user scope
//	<root>/.claude/claudio.settings.json         project scope
//	<root>/.claude/claudio.settings.local.json   project-local scope
//
// The highest-precedence document that defines a projects list wins outright;
// project lists are never unioned across scopes. Environment merging is
// key-level: project entries override base entries of the same key, untouched
// keys survive.
package settings
