package airfoil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultUIUCURL is the UIUC airfoil coordinate database
const DefaultUIUCURL = "https://m-selig.ae.illinois.edu/ads/coord/"

// UIUC downloads coordinate files from the UIUC database into a local cache.
// Cached files are never downloaded again.
type UIUC struct {
	client  *resty.Client
	limiter *rate.Limiter
	cache   Dir
	log     logrus.FieldLogger
}

// NewUIUC creates a fetcher that stores files under cacheDir.
func NewUIUC(baseURL, cacheDir string, log logrus.FieldLogger) *UIUC {
	if baseURL == "" {
		baseURL = DefaultUIUCURL
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(20 * time.Second)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(time.Second)

	return &UIUC{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 2),
		cache:   Dir(cacheDir),
		log:     log,
	}
}

// SetRateLimit changes the request pacing.
func (u *UIUC) SetRateLimit(every time.Duration, burst int) {
	u.limiter = rate.NewLimiter(rate.Every(every), burst)
}

// Path is where the airfoil's file lives in the cache.
func (u *UIUC) Path(name string) string {
	return filepath.Join(string(u.cache), name+".dat")
}

// Fetch makes sure name.dat is in the cache and returns its path.
func (u *UIUC) Fetch(ctx context.Context, name string) (string, error) {
	path := u.Path(name)
	if _, err := os.Stat(path); err == nil {
		u.log.WithField("airfoil", name).Debug("coordinate file cached")
		return path, nil
	}

	if err := u.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := u.client.R().SetContext(ctx).Get(name + ".dat")
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return "", fmt.Errorf("fetch %s: %w", name, ErrNotFound)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: unexpected status %s", name, resp.Status())
	}

	// Validate before caching so a bad page never poisons the cache
	if _, err := ParseDat(bytes.NewReader(resp.Body()), name); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(u.cache), 0755); err != nil {
		return "", err
	}
	tmp := path + ".part"
	if err := os.WriteFile(tmp, resp.Body(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}

	u.log.WithFields(logrus.Fields{"airfoil": name, "path": path}).Info("downloaded coordinate file")
	return path, nil
}

// FetchAll fetches each airfoil, logging and skipping failures. It returns
// the names that are available locally.
func (u *UIUC) FetchAll(ctx context.Context, names []string) ([]string, error) {
	var ok []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return ok, err
		}
		if _, err := u.Fetch(ctx, name); err != nil {
			u.log.WithError(err).WithField("airfoil", name).Warn("skipping airfoil")
			continue
		}
		ok = append(ok, name)
	}
	return ok, nil
}

// Coordinates implements Source.
func (u *UIUC) Coordinates(ctx context.Context, name string) (*Airfoil, error) {
	path, err := u.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return LoadDat(path)
}
