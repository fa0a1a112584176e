// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slogfield

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrs(t *testing.T) {
	testCases := []struct {
		Name  string
		Attr  slog.Attr
		Key   string
		Value slog.Value
	}{
		{
			Name:  "Error",
			Attr:  Error(errors.New("boom")),
			Key:   "error",
			Value: slog.AnyValue(errors.New("boom")),
		},
		{
			Name:  "String",
			Attr:  String("section", "DEFAULT"),
			Key:   "section",
			Value: slog.StringValue("DEFAULT"),
		},
		{
			Name:  "Strings",
			Attr:  Strings("sections", []string{"DEFAULT", "db"}),
			Key:   "sections",
			Value: slog.AnyValue([]string{"DEFAULT", "db"}),
		},
		{
			Name:  "Int",
			Attr:  Int("index", 2),
			Key:   "index",
			Value: slog.IntValue(2),
		},
		{
			Name:  "Path",
			Attr:  Path("/etc/app/config.ini"),
			Key:   "path",
			Value: slog.StringValue("/etc/app/config.ini"),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			if !assert.Equal(t, testCase.Key, testCase.Attr.Key) {
				return
			}
			if !assert.Equal(t, testCase.Value.String(), testCase.Attr.Value.String()) {
				return
			}
		})
	}
}
