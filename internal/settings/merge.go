package settings

// HighestProjects returns the highest-precedence document that defines a
// projects list, along with that list. Documents must be ordered lowest
// precedence first, as returned by Discover and LoadAll. Returns nil when no
// document defines projects, which means the launch passes through.
func HighestProjects(docs []*Document) (*Document, []Project) {
	for i := len(docs) - 1; i >= 0; i-- {
		if docs[i].HasProjects {
			return docs[i], docs[i].Projects
		}
	}
	return nil, nil
}

// MergeEnv merges overlay onto base at key level: overlay entries override
// base entries of the same key, base keys absent from overlay are untouched.
// Neither input is mutated.
func MergeEnv(base, overlay map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}
