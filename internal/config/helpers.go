package config

import "strings"

// splitList flattens comma separated entries and drops blanks, so a value
// may be given as a list or as "a,b,c" in the environment.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
