// Package s3logs reads Databricks cluster log delivery from an S3 bucket.
package s3logs

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/sparktriage/internal/model"
)

// ErrTooLarge marks a log object over the configured size ceiling.
var ErrTooLarge = errors.New("s3logs: object exceeds size limit")

// ErrBinary marks an object whose content is not valid UTF-8 text.
var ErrBinary = errors.New("s3logs: object is not valid UTF-8 text")

// DefaultMaxFileMB is the fetch size ceiling when none is configured.
const DefaultMaxFileMB = 20

// api is the S3 surface the store uses; *s3.Client satisfies it.
type api interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store implements connector.LogStore over one bucket and delivery prefix.
type Store struct {
	api       api
	bucket    string
	prefix    string
	maxFileMB int
}

// New creates a Store. maxFileMB <= 0 falls back to DefaultMaxFileMB.
func New(client api, bucket, prefix string, maxFileMB int) *Store {
	if maxFileMB <= 0 {
		maxFileMB = DefaultMaxFileMB
	}
	return &Store{api: client, bucket: bucket, prefix: prefix, maxFileMB: maxFileMB}
}

// NewFromConfig creates a Store backed by a real S3 client using the default
// AWS credential chain.
func NewFromConfig(ctx context.Context, region, bucket, prefix string, maxFileMB int) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("s3logs: load AWS config: %w", err)
	}
	return New(s3.NewFromConfig(cfg), bucket, prefix, maxFileMB), nil
}

// ListCluster returns the log objects delivered for a cluster, newest first.
func (s *Store) ListCluster(ctx context.Context, clusterID string) ([]model.LogFile, error) {
	logPath := s.prefix + "/" + clusterID

	var files []model.LogFile
	paginator := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(logPath),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3logs: list logs for cluster %s: %w", clusterID, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			fileName := path.Base(key)
			files = append(files, model.LogFile{
				Key:          key,
				FileName:     fileName,
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
				Role:         model.ClassifyLogFile(fileName),
			})
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].LastModified.After(files[j].LastModified)
	})
	return files, nil
}

// Fetch downloads one log object and returns its text: size-checked against
// the MB ceiling, gunzipped for .gz keys, validated as UTF-8 and normalized
// to NFC.
func (s *Store) Fetch(ctx context.Context, key string) (string, error) {
	head, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("s3logs: head %s: %w", key, err)
	}

	size := aws.ToInt64(head.ContentLength)
	limit := int64(s.maxFileMB) * 1024 * 1024
	if size > limit {
		return "", fmt.Errorf("%w: %s is %.1fMB, maximum allowed %dMB",
			ErrTooLarge, key, float64(size)/(1024*1024), s.maxFileMB)
	}

	obj, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("s3logs: get %s: %w", key, err)
	}
	defer obj.Body.Close()

	var reader io.Reader = obj.Body
	if strings.HasSuffix(strings.ToLower(key), ".gz") {
		gz, err := gzip.NewReader(obj.Body)
		if err != nil {
			return "", fmt.Errorf("s3logs: gunzip %s: %w", key, err)
		}
		defer gz.Close()
		reader = gz
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("s3logs: read %s: %w", key, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %s", ErrBinary, key)
	}
	return norm.NFC.String(string(raw)), nil
}
