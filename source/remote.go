package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"cardcut/misc"
)

// NewClient returns http client used to fetch remote sources. Requests are
// retried with backoff and logged at debug level.
func NewClient(log *zap.Logger) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.HTTPClient.Timeout = 2 * time.Minute
	c.Logger = leveledLogger{log: log.Named("http")}
	return c
}

func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && len(u.Host) > 0
}

// download stores remote source in a temporary file keeping its extension.
func download(ctx context.Context, ref string, client *retryablehttp.Client, log *zap.Logger) (string, error) {
	if client == nil {
		client = NewClient(log)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected response status: %s", resp.Status)
	}

	var ext string
	if u, err := url.Parse(ref); err == nil {
		ext = path.Ext(u.Path)
	}
	f, err := os.CreateTemp("", misc.GetAppName()+"-dl-*"+ext)
	if err != nil {
		return "", err
	}
	n, err := io.Copy(f, resp.Body)
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("unable to save download: %w", err)
	}
	log.Debug("Source downloaded", zap.String("url", ref), zap.String("file", f.Name()), zap.Int64("bytes", n))
	return f.Name(), nil
}

// leveledLogger lets retryablehttp log through zap.
type leveledLogger struct {
	log *zap.Logger
}

func (l leveledLogger) Error(msg string, kv ...any) { l.log.Error(msg, fields(kv)...) }
func (l leveledLogger) Warn(msg string, kv ...any)  { l.log.Warn(msg, fields(kv)...) }
func (l leveledLogger) Info(msg string, kv ...any)  { l.log.Debug(msg, fields(kv)...) }
func (l leveledLogger) Debug(msg string, kv ...any) { l.log.Debug(msg, fields(kv)...) }

func fields(kv []any) []zap.Field {
	out := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, zap.Any(fmt.Sprint(kv[i]), kv[i+1]))
	}
	return out
}
