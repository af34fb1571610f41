package ecobici

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lab-movilidad/ecobici/dataset"
)

// loadCSVFromZip downloads a ZIP archive, extracts the first entry named
// with a .csv suffix, and parses it. It is a pure function of the URL:
// all temporary artifacts live in a per-call directory with a unique name,
// so concurrent calls never collide, and the directory is removed on every
// exit path. The widened archive timeout applies only to the client built
// here; it never leaks to other operations.
func (f *Fetcher) loadCSVFromZip(url string) (*dataset.Dataset, error) {
	log.Printf("downloading trip archive from %s", url)

	tmpDir, err := os.MkdirTemp("", "ecobici-")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	zipPath := filepath.Join(tmpDir, "recorridos-"+uuid.NewString()+".zip")
	client := &http.Client{Timeout: f.archiveTimeout}
	if err := downloadFile(client, url, zipPath); err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()

	var entry *zip.File
	for _, zf := range zr.File {
		if strings.HasSuffix(zf.Name, ".csv") {
			entry = zf
			break
		}
	}
	if entry == nil {
		return nil, &ArchiveError{Msg: "no CSV found in downloaded archive"}
	}

	csvPath := filepath.Join(tmpDir, "recorridos-"+uuid.NewString()+".csv")
	if err := extractEntry(entry, csvPath); err != nil {
		return nil, err
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return dataset.FromCSV(file)
}

// downloadFile writes the response body to path in binary mode.
func downloadFile(client *http.Client, url, path string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// extractEntry writes a single archive entry to path, without touching any
// other entry.
func extractEntry(entry *zip.File, path string) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
