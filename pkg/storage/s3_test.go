package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		s, err := New(Config{Bucket: "catalogs", AccessKey: "a", SecretKey: "s", Prefix: "/i18n"})
		require.NoError(t, err)
		require.Equal(t, DefaultRegion, s.cfg.Region)
		require.Equal(t, "i18n/", s.cfg.Prefix)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		s, err := New(Config{Bucket: "catalogs"})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, s)
	})
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	s := &S3Storage{cfg: Config{Prefix: "locale/"}}

	key, err := s.objectKey("/ca_ES/LC_MESSAGES/app.mo")
	require.NoError(t, err)
	require.Equal(t, "locale/ca_ES/LC_MESSAGES/app.mo", key)

	_, err = s.objectKey("../secret")
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = s.objectKey("")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	notFound := &smithy.GenericAPIError{Code: "NoSuchKey", Message: "missing"}
	require.ErrorIs(t, wrapS3Error(notFound, ErrRequestFailed), ErrNotFound)

	denied := &smithy.GenericAPIError{Code: "AccessDenied"}
	require.ErrorIs(t, wrapS3Error(denied, ErrRequestFailed), ErrAccessDenied)

	other := errors.New("connection reset")
	err := wrapS3Error(other, ErrDownloadFailed)
	require.ErrorIs(t, err, ErrDownloadFailed)
	require.NotErrorIs(t, err, other)
}

// fakeBucket serves a path-style bucket named "catalogs".
func fakeBucket(t *testing.T, objects map[string]string) *S3Storage {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("list-type") == "2" {
			prefix := r.URL.Query().Get("prefix")
			seen := map[string]bool{}
			var b strings.Builder
			b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"><Name>catalogs</Name>`)
			b.WriteString("<Prefix>" + prefix + "</Prefix><IsTruncated>false</IsTruncated>")
			for key := range objects {
				rest, ok := strings.CutPrefix(key, prefix)
				if !ok {
					continue
				}
				dir, _, _ := strings.Cut(rest, "/")
				if !seen[dir] {
					seen[dir] = true
					b.WriteString("<CommonPrefixes><Prefix>" + prefix + dir + "/</Prefix></CommonPrefixes>")
				}
			}
			b.WriteString("</ListBucketResult>")
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(b.String()))
			return
		}

		key := strings.TrimPrefix(r.URL.Path, "/catalogs/")
		body, ok := objects[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			if r.Method != http.MethodHead {
				_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`))
			}
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	s, err := New(Config{
		Bucket:    "catalogs",
		AccessKey: "test",
		SecretKey: "test",
		Endpoint:  srv.URL,
		PathStyle: true,
		Prefix:    "locale/",
	})
	require.NoError(t, err)
	return s
}

func TestS3Storage(t *testing.T) {
	t.Parallel()

	s := fakeBucket(t, map[string]string{
		"locale/ca_ES/LC_MESSAGES/app.mo": "ca catalog",
		"locale/en/LC_MESSAGES/app.mo":    "en catalog",
		"locale/fr/LC_MESSAGES/other.mo":  "fr catalog",
	})
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		ok, err := s.Exists(ctx, "ca_ES/LC_MESSAGES/app.mo")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = s.Exists(ctx, "de/LC_MESSAGES/app.mo")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("list", func(t *testing.T) {
		names, err := s.List(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"ca_ES", "en", "fr"}, names)
	})

	t.Run("sync", func(t *testing.T) {
		dir := t.TempDir()
		n, err := s.Sync(ctx, dir, "app")
		require.NoError(t, err)
		require.Equal(t, 2, n)

		data, err := os.ReadFile(filepath.Join(dir, "ca_ES", "LC_MESSAGES", "app.mo"))
		require.NoError(t, err)
		require.Equal(t, "ca catalog", string(data))

		_, err = os.Stat(filepath.Join(dir, "fr", "LC_MESSAGES", "app.mo"))
		require.True(t, os.IsNotExist(err))
	})
}
