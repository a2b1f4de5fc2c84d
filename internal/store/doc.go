// Package store persists notes as UTF-8 .md files under a root
// directory. Note names are root-relative paths joined with "/" and
// carry no extension; the store adds ".md" on disk. Content is opaque,
// front-matter included.
//
// Writes are atomic: temp file, fsync, rename. The package also ships
// the autosave scheduler and an fsnotify watcher over the note tree.
package store
