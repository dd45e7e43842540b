package file_store

import "io"

// ProfileImageStore persists uploaded profile images and resolves the public
// url of a stored object.
type ProfileImageStore interface {
	Store(r io.Reader, fileName string) (key string, err error)
	GetUrlFromKey(key string) string
	CleanUp()
}
