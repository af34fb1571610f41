package ecobici

import "fmt"

// DownloadError reports a failed dataset download. The user-facing message
// stays generic; the transport cause is kept for diagnostics via Unwrap
// but is not part of the default display.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("dataset download failed: %s", e.URL)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ArchiveError reports a downloaded archive that cannot yield a dataset,
// typically because it contains no CSV entry.
type ArchiveError struct {
	Msg string
}

func (e *ArchiveError) Error() string { return e.Msg }
