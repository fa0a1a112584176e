// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package section

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/z5labs/inistore/internal/try"
)

// Json represents a Source where its underlying format is JSON.
type Json struct {
	r io.Reader
}

// FromJson returns a Source which decodes its List
// from the JSON document read from r.
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

// Sections implements the Source interface.
func (src Json) Sections() (_ List, err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return nil, err
	}

	// json.Number keeps numeric option values exactly as written.
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var entries []map[string]map[string]any
	err = dec.Decode(&entries)
	if err != nil {
		return nil, InvalidJsonError{Cause: err}
	}
	return fromEntries(entries)
}
