package file_store

import (
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/socialraccoon/api/utils"
)

type S3FileStore struct {
	bucket    string
	urlPrefix string
	uploader  *s3manager.Uploader
}

// NewS3FileStore creates a store uploading into the given bucket. Stored
// objects are served from urlPrefix, typically a CDN distribution in front
// of the bucket.
func NewS3FileStore(region string, bucket string, urlPrefix string) (*S3FileStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3FileStore{
		bucket:    bucket,
		urlPrefix: urlPrefix,
		uploader:  s3manager.NewUploader(sess),
	}, nil
}

// Key is a fresh uuid plus the upload's extension, so concurrent uploads of
// identically named files never collide.
func (s *S3FileStore) generateKey(fileName string) string {
	return uuid.New().String() + utils.GetFileExtNameWithDot(fileName)
}

func (s *S3FileStore) Store(r io.Reader, fileName string) (string, error) {
	key := s.generateKey(fileName)
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		ACL:    aws.String("public-read"),
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3FileStore) GetUrlFromKey(key string) string {
	return s.urlPrefix + key
}

func (s *S3FileStore) CleanUp() {
	// do nothing for s3
}
