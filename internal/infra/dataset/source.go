package dataset

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers for file://, s3:// and gs:// sources.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const (
	defaultObjectKey = "restaurants.json"
	fetchTimeout     = 30 * time.Second
	maxPayloadBytes  = 64 << 20
)

// Source fetches the raw fixture bytes.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// NewSource picks a fetcher from the shape of the location: http(s) URLs are
// fetched directly, other URLs open a gocloud bucket, plain paths read the
// local filesystem.
func NewSource(location, key string) Source {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return &httpSource{
			url:    location,
			client: &http.Client{Timeout: fetchTimeout},
		}
	case strings.Contains(location, "://"):
		if key == "" {
			key = defaultObjectKey
		}

		return &bucketSource{bucketURL: location, key: key}
	default:
		return fileSource(location)
	}
}

type fileSource string

func (s fileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", string(s))
	}

	return data, nil
}

func (s fileSource) String() string {
	return string(s)
}

type bucketSource struct {
	bucketURL string
	key       string
}

func (s *bucketSource) Fetch(ctx context.Context) ([]byte, error) {
	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", s.bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "read object %s", s.key)
	}

	return data, nil
}

func (s *bucketSource) String() string {
	return strings.TrimSuffix(s.bucketURL, "/") + "/" + path.Clean(s.key)
}

type httpSource struct {
	url    string
	client *http.Client
}

func (s *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", s.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: unexpected status %d", s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read body of %s", s.url)
	}

	return data, nil
}

func (s *httpSource) String() string {
	return s.url
}
