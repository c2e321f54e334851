package s3

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

const (
	FolderFeedback = "feedback"
	FolderResponse = "responses"
	FolderUser     = "users"
)

type ItfS3 interface {
	UploadFile(folder string, file *multipart.FileHeader) (string, error)
	PresignUrl(fileURL string) (string, error)
	DeleteFile(fileURL string) error
}

type s3Client struct {
	client     *s3.S3
	uploader   *s3manager.Uploader
	bucketName string
}

func New() (ItfS3, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})
	if err != nil {
		return nil, err
	}

	return &s3Client{
		client:     s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		bucketName: os.Getenv("AWS_BUCKET_NAME"),
	}, nil
}

// UploadFile stores file under folder and returns its public location.
func (s *s3Client) UploadFile(folder string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	output, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(ObjectKey(folder, file.Filename)),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return output.Location, nil
}

func (s *s3Client) PresignUrl(fileURL string) (string, error) {
	key, err := KeyFromURL(fileURL)
	if err != nil {
		return "", err
	}

	if _, err := s.client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}

	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	return req.Presign(15 * time.Minute)
}

func (s *s3Client) DeleteFile(fileURL string) error {
	key, err := KeyFromURL(fileURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	return err
}

// ObjectKey builds a collision-free key that keeps the original extension.
func ObjectKey(folder string, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return path.Join(folder, uuid.NewString()+ext)
}

// KeyFromURL accepts either a full object URL or a bare key.
func KeyFromURL(fileURL string) (string, error) {
	key := fileURL
	if parts := strings.SplitN(fileURL, ".com/", 2); len(parts) == 2 {
		key = parts[1]
	}

	decoded, err := url.QueryUnescape(key)
	if err != nil {
		return "", fmt.Errorf("failed to decode S3 key: %w", err)
	}

	return decoded, nil
}
