package filestorage

import (
	"io"
)

// FileStorage is the object-storage contract used by the admission
// workflow: stream a file in under a kind-specific name and get back the
// storage path recorded with the registration.
type FileStorage interface {
	// Save stores the content under public/<kind>-<timestamp>-<random>.<ext>,
	// keeping the lower-cased extension of originalName, and returns that path.
	Save(r io.Reader, kind, originalName string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing
	// file is not an error.
	DeleteFile(path string) error
}
