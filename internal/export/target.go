package export

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vangoui/internal/errors"
)

// Target receives exported pages.
type Target interface {
	// Put stores data under name, a slash separated relative path.
	Put(ctx context.Context, name, contentType string, data []byte) error

	// String describes the destination for logs.
	String() string
}

// DirTarget writes pages below a local directory.
type DirTarget struct {
	Dir string
}

// NewDirTarget creates dir if needed.
func NewDirTarget(dir string) (*DirTarget, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E130").WithDetail("Cannot create " + dir).Wrap(err)
	}
	return &DirTarget{Dir: dir}, nil
}

// Put writes data to a temporary file and renames it into place.
func (t *DirTarget) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst := filepath.Join(t.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.New("E130").WithDetail(dst).Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".vangoui-*")
	if err != nil {
		return errors.New("E130").WithDetail(dst).Wrap(err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.New("E130").WithDetail(dst).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.New("E130").WithDetail(dst).Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return errors.New("E130").WithDetail(dst).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return errors.New("E130").WithDetail(dst).Wrap(err)
	}
	return nil
}

func (t *DirTarget) String() string { return t.Dir }

// PutObjectAPI is the part of *s3.Client the S3 target uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Target uploads pages to a bucket under a key prefix.
type S3Target struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Target creates a target using client.
func NewS3Target(client PutObjectAPI, bucket, prefix string) *S3Target {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3Target{client: client, bucket: bucket, prefix: prefix}
}

// Put uploads data as one object.
func (t *S3Target) Put(ctx context.Context, name, contentType string, data []byte) error {
	key := t.prefix + path.Clean(name)
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(t.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=300"),
		Metadata: map[string]string{
			"generator":   "vangoui",
			"export-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.New("E131").WithDetail("s3://" + t.bucket + "/" + key).Wrap(err)
	}
	return nil
}

func (t *S3Target) String() string {
	return "s3://" + t.bucket + "/" + t.prefix
}

// ParseS3URL splits s3://bucket/prefix. It reports ok=false for anything
// that is not an s3 URL.
func ParseS3URL(target string) (bucket, prefix string, ok bool, err error) {
	if !strings.HasPrefix(target, "s3://") {
		return "", "", false, nil
	}
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return "", "", true, errors.New("E132").WithDetail("Cannot parse " + target)
	}
	return u.Host, strings.Trim(u.Path, "/"), true, nil
}

// OpenTarget resolves an export target string: s3://bucket/prefix uploads
// with the default AWS credential chain, anything else is a directory.
// region overrides the region from the environment when set.
func OpenTarget(ctx context.Context, target, region string) (Target, error) {
	if strings.TrimSpace(target) == "" {
		return nil, errors.New("E132").WithDetail("Export target is empty")
	}

	bucket, prefix, isS3, err := ParseS3URL(target)
	if err != nil {
		return nil, err
	}
	if !isS3 {
		if strings.Contains(target, "://") {
			return nil, errors.New("E132").WithDetail("Unsupported scheme in " + target)
		}
		return NewDirTarget(target)
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E131").WithDetail("Cannot load AWS configuration").Wrap(err)
	}
	return NewS3Target(s3.NewFromConfig(cfg), bucket, prefix), nil
}
