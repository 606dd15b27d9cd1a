// Package cached provides a config.Loader decorator backed by github.com/patrickmn/go-cache.
package cached
