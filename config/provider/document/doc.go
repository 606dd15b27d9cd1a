// Package document implements config.Loader over one configuration document,
// read through a config.DataFetcher and decoded by a config.Parser.
//
// Loadable types are structs, pointers to structs, and string-keyed maps. Other
// targets fail with config.KindInvalidTargetType before the document is read.
// Targets implementing config.Defaulter and config.Validator are defaulted and
// validated after decoding.
//
// During bootstrap the loader reads its own "bootstrap" section. Without one the
// document loader is used directly; with one it is replaced by a delegate,
// a cached.Loader by default:
//
//	bootstrap:
//	  cache_ttl: 1m
//
//	api:
//	  host: localhost
package document
