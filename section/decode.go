// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package section

import "fmt"

// InvalidEntryError occurs when an entry of a decoded section document
// does not hold exactly one section.
type InvalidEntryError struct {
	Index    int
	Sections int
}

// Error implements the error interface.
func (e InvalidEntryError) Error() string {
	return fmt.Sprintf("entry %d must hold exactly one section but holds %d", e.Index, e.Sections)
}

func fromEntries(entries []map[string]map[string]any) (List, error) {
	l := make(List, 0, len(entries))
	for i, entry := range entries {
		if len(entry) != 1 {
			return nil, InvalidEntryError{Index: i, Sections: len(entry)}
		}
		for name, opts := range entry {
			sec := Section{
				Name:    name,
				Options: make(map[string]string, len(opts)),
			}
			for k, v := range opts {
				sec.Options[k] = stringify(v)
			}
			l = append(l, sec)
		}
	}
	return l, nil
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
