// Package errors provides sentinel errors for documentation discovery.
package errors

import "errors"

var (
	// ErrDocsDirWalkFailed indicates filesystem traversal of a docs or blog directory failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrFileReadFailed indicates reading a discovered page failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrDuplicateID indicates two pages resolved to the same document id.
	ErrDuplicateID = errors.New("duplicate document id")
)
