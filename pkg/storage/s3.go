package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"
)

// S3Storage reads gettext catalogs from a bucket. It satisfies the
// locale registry backend and lister interfaces.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// New creates an S3Storage with static credentials.
func New(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		}
	})

	return &S3Storage{client: client, cfg: cfg}, nil
}

// Exists reports whether the object at key (relative to the prefix)
// exists. A missing object is not an error.
func (s *S3Storage) Exists(ctx context.Context, key string) (bool, error) {
	full, err := s.objectKey(key)
	if err != nil {
		return false, err
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(full),
	})
	if err == nil {
		return true, nil
	}
	if err = wrapS3Error(err, ErrRequestFailed); errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Open streams the object at key. The caller closes the reader.
func (s *S3Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	full, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(full),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrDownloadFailed)
	}
	return out.Body, nil
}

// List returns the locale directories found directly under the prefix.
func (s *S3Storage) List(ctx context.Context) ([]string, error) {
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.cfg.Bucket),
		Prefix:    aws.String(s.cfg.Prefix),
		Delimiter: aws.String("/"),
	})

	var names []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrRequestFailed)
		}
		for _, cp := range page.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), s.cfg.Prefix), "/")
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

// Sync downloads {locale}/LC_MESSAGES/{domain}.mo for every listed locale
// into dir, so file based catalog readers can use it. Locales without the
// domain file are skipped. It returns the number of catalogs written.
func (s *S3Storage) Sync(ctx context.Context, dir, domain string) (int, error) {
	locales, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	written := make([]bool, len(locales))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, name := range locales {
		g.Go(func() error {
			key := path.Join(name, "LC_MESSAGES", domain+".mo")
			ok, err := s.download(ctx, key, filepath.Join(dir, filepath.FromSlash(key)))
			written[i] = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	n := 0
	for _, ok := range written {
		if ok {
			n++
		}
	}
	return n, nil
}

func (s *S3Storage) download(ctx context.Context, key, dst string) (bool, error) {
	body, err := s.Open(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".catalog-*")
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return false, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	return true, nil
}

// objectKey joins key onto the prefix and rejects traversal.
func (s *S3Storage) objectKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", ErrInvalidKey
	}
	return s.cfg.Prefix + key, nil
}
