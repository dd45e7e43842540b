package file_store

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/socialraccoon/api/utils"
)

const (
	TmpFileDirPrefix = "_tmp_file_store_"
)

// LocalFileStore writes uploads to a local folder, mainly for development
// and testing.
type LocalFileStore struct {
	bucket     string
	folderName string
}

func NewLocalFileStore(bucket string) (*LocalFileStore, error) {
	folderName, err := CreateFolder(bucket)
	if err != nil {
		return nil, err
	}

	return &LocalFileStore{
		bucket:     bucket,
		folderName: folderName,
	}, nil
}

func CreateFolder(bucket string) (string, error) {
	folderName := TmpFileDirPrefix + bucket
	err := os.MkdirAll(folderName, os.ModePerm)
	if err != nil && strings.Contains(err.Error(), "file exists") {
		return folderName, nil
	}
	return folderName, err
}

func DeleteFolder(folderName string) error {
	return os.RemoveAll(folderName)
}

func (s *LocalFileStore) Store(r io.Reader, fileName string) (string, error) {
	key := uuid.New().String() + utils.GetFileExtNameWithDot(fileName)
	localPath := filepath.Join(s.folderName, key)

	file, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Use io.Copy to just dump the upload to the file. This supports huge files
	if _, err := io.Copy(file, r); err != nil {
		return "", err
	}

	return key, nil
}

func (s *LocalFileStore) GetUrlFromKey(key string) string {
	return "/" + filepath.Join(s.folderName, key)
}

func (s *LocalFileStore) CleanUp() {
	DeleteFolder(s.folderName)
}
