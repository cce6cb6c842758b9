// Package storage uploads assets to S3-compatible object storage
// (Cloudflare R2 in production).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Object is a stored asset: the bucket key and its public URL.
type Object struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Storage uploads and deletes objects.
type Storage interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// R2 talks to a Cloudflare R2 bucket through the S3 API.
type R2 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2(accountID, accessKeyID, secretAccessKey, bucket, publicURL string) *R2 {
	client := s3.New(s3.Options{
		Region:       "auto",
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
	})
	return &R2{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores data under {folder}/{unix-ms}-{filename} and returns the key
// and public URL.
func (r *R2) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*Object, error) {
	key := fmt.Sprintf("%s/%d-%s", strings.Trim(folder, "/"), time.Now().UnixMilli(), sanitizeFilename(filename))

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: upload %s: %w", key, err)
	}

	return &Object{Key: key, URL: r.publicURL + "/" + key}, nil
}

// Delete removes an object by key.
func (r *R2) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "file"
	}
	return out
}
