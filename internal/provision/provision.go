// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package provision makes the raw dataset files exist locally before the
// loader runs. It is an explicit collaborator invoked once by the host
// application, never an import-time side effect, and it is idempotent:
// once the sentinel file is present, EnsureDataset returns without touching
// the network.
//
// The fetch is deliberately polite toward the corpus host: download
// attempts are paced by a rate limiter and capped by a retry budget, with
// each retry counted on a metric. The downloaded payload is sniffed before
// extraction so a captive-portal HTML page or truncated file is rejected
// instead of fed to the tar reader.
//
// Structs:
//   - Fetcher: the download/extract policy plus its HTTP client and limiter.
//
// Functions:
//   - Fetcher.EnsureDataset: the idempotent provisioning entry point.
package provision

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

const instrumentationName = "github.com/julianbeese/Group-11/internal/provision"

// Fetcher downloads and extracts the dataset archive. The zero value is not
// usable; construct with NewFetcher.
type Fetcher struct {
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
	retries    metric.Int64Counter
}

// NewFetcher builds a Fetcher with the given politeness pacing and retry
// budget. requestsPerSecond values at or below zero fall back to one
// request per second; maxRetries below zero falls back to zero (a single
// attempt).
func NewFetcher(requestsPerSecond float64, maxRetries int) (*Fetcher, error) {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	retries, err := otel.Meter(instrumentationName).Int64Counter("provision.download.retries",
		metric.WithDescription("download attempts beyond the first"))
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		client:     &http.Client{Timeout: 30 * time.Minute},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		maxRetries: maxRetries,
		retries:    retries,
	}, nil
}

// EnsureDataset makes sure the extracted dataset directory exists and
// contains the sentinel file. When the sentinel is already present the call
// is a no-op, so repeated invocations are safe. Otherwise the archive is
// downloaded, sniffed, extracted into targetDir's parent (the archive
// carries its own top-level directory), and the sentinel re-checked.
//
// Inputs:
//   - ctx: cancels the download.
//   - url: the archive URL.
//   - targetDir: the extracted dataset directory.
//   - sentinel: a file name inside targetDir whose presence marks a
//     completed provisioning run (typically the movie metadata file).
//
// Outputs:
//   - error: when the download or extraction fails, or when extraction
//     completed but the sentinel still does not exist.
func (f *Fetcher) EnsureDataset(ctx context.Context, url, targetDir, sentinel string) error {
	marker := filepath.Join(targetDir, sentinel)
	if _, err := os.Stat(marker); err == nil {
		slog.InfoContext(ctx, "dataset already provisioned", "dir", targetDir)
		return nil
	}

	archive, err := f.download(ctx, url, 0)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.Close()
		_ = os.Remove(archive.Name())
	}()

	if err := extractArchive(archive.Name(), filepath.Dir(targetDir)); err != nil {
		return err
	}
	if _, err := os.Stat(marker); err != nil {
		return fmt.Errorf("archive extracted but %s is still missing: %w", marker, err)
	}
	slog.InfoContext(ctx, "dataset provisioned", "url", url, "dir", targetDir)
	return nil
}

// download fetches the archive to a temporary file, retrying up to the
// configured budget. Each attempt waits on the rate limiter first, so even
// a tight retry loop never hammers the corpus host.
func (f *Fetcher) download(ctx context.Context, url string, tryCount int) (*os.File, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	file, err := f.fetchOnce(ctx, url)
	if err != nil {
		if tryCount < f.maxRetries {
			f.retries.Add(ctx, 1)
			slog.WarnContext(ctx, "dataset download failed, retrying",
				"url", url, "attempt", tryCount+1, "error", err)
			return f.download(ctx, url, tryCount+1)
		}
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	return file, nil
}

// fetchOnce performs a single HTTP GET into a temporary file and verifies
// the payload actually looks like an archive.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*os.File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp("", "movie-dataset-*.archive")
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, err
	}
	if err := verifyArchivePayload(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, err
	}
	return tmp, nil
}

// verifyArchivePayload sniffs the first bytes of the downloaded file and
// rejects anything that is not a gzip or tar payload. This catches the
// classic failure where a proxy or portal answers 200 with an HTML page.
func verifyArchivePayload(file *os.File) error {
	head := make([]byte, 262)
	n, err := file.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return err
	}
	kind, err := filetype.Match(head[:n])
	if err != nil {
		return err
	}
	if kind != matchers.TypeGz && kind != matchers.TypeTar {
		return fmt.Errorf("payload is %q, expected a gzip or tar archive", kind.MIME.Value)
	}
	return nil
}

// extractArchive unpacks a tar or tar.gz archive under destDir, refusing
// entries that would escape it.
func extractArchive(archivePath, destDir string) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	var reader io.Reader = file
	head := make([]byte, 262)
	n, _ := file.ReadAt(head, 0)
	if kind, _ := filetype.Match(head[:n]); kind == matchers.TypeGz {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("open gzip stream: %w", err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read archive entry: %w", err)
		}
		target, err := secureJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		default:
			// Symlinks and device nodes have no business in this corpus.
			slog.Warn("skipping unsupported archive entry", "name", hdr.Name, "type", hdr.Typeflag)
		}
	}
}

// secureJoin joins an archive entry name onto destDir and rejects path
// traversal.
func secureJoin(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.Clean(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes destination directory", name)
	}
	return target, nil
}
