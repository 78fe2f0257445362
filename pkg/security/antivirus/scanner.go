package antivirus

import "context"

// ScanResult contains the result of a malware scan
type ScanResult struct {
	Infected   bool
	ThreatName string
	Scanner    string
	Err        error
}

// Scanner checks uploaded content for malware. Implementations fail closed:
// when Err is set, Infected is true as well.
type Scanner interface {
	Scan(ctx context.Context, data []byte) ScanResult
	Name() string
}

// NoOpScanner reports every file as clean. Used when no daemon is configured.
type NoOpScanner struct{}

var _ Scanner = NoOpScanner{}

func (NoOpScanner) Scan(context.Context, []byte) ScanResult {
	return ScanResult{Scanner: "noop"}
}

func (NoOpScanner) Name() string {
	return "noop"
}

// New returns a ClamAV scanner for address, or a NoOpScanner when address is empty.
func New(address string) Scanner {
	if address == "" {
		return NoOpScanner{}
	}
	return NewClamAVScanner(address, 0)
}
