package file_store

import "io"

type FakeFileStore struct{}

func (*FakeFileStore) Store(r io.Reader, fileName string) (key string, err error) {
	return fileName, nil
}

func (*FakeFileStore) GetUrlFromKey(key string) string {
	return "/uploads/" + key
}

func (*FakeFileStore) CleanUp() {}

// FailingFileStore always fails, used to exercise storage error paths.
type FailingFileStore struct {
	Err error
}

func (s *FailingFileStore) Store(r io.Reader, fileName string) (string, error) {
	return "", s.Err
}

func (*FailingFileStore) GetUrlFromKey(key string) string { return "" }

func (*FailingFileStore) CleanUp() {}
