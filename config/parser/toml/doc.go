// Package toml provides a TOML parser implementation for the config package,
// built on github.com/BurntSushi/toml.
//
// Path segments select nested tables:
//
//	[database.connection]
//	host = "db.example.com"
//
// is read with config.MustPath("database", "connection").
// A key that does not exist wraps config.ErrPathNotFound; a key that exists but
// is not a table while more segments remain is a decode error.
package toml
