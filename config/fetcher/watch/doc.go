// Package watch provides a DataFetcher that follows a configuration file on disk.
//
// It watches the file's directory with github.com/fsnotify/fsnotify, so editors
// that replace the file through a rename are seen as a create event. Loaders
// built on this fetcher return values that can change between calls; the
// Present/Absent/Failed classification only changes when the file does.
package watch
