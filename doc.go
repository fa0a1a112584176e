// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package inistore makes sure an ini config file exists and loads it.
//
// A Store is given a directory, a filename and, optionally, the ordered
// sections the file should be created with. Calling [Store.GetConfig]
// then either reads the existing file or creates the directory and file
// from those sections before reading it back:
//
//	store := inistore.New("app.ini", "/etc/app",
//	    inistore.WithSections(section.List{
//	        {Name: section.Default, Options: map[string]string{"log_level": "info"}},
//	        {Name: "database", Options: map[string]string{"host": "localhost"}},
//	    }),
//	)
//	_, err := store.GetConfig()
//	if err != nil {
//	    return err
//	}
//	host, _ := store.Get("database", "host")
//
// The first section must always be [section.Default]. Options in the
// DEFAULT section act as fallbacks for every other section.
//
// A Store is not safe for concurrent use and does not guard the config
// file against other writers.
package inistore
