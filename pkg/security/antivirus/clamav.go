package antivirus

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// ClamAVScanner streams files to a clamd daemon with the zINSTREAM command.
type ClamAVScanner struct {
	address string // "host:port" or a unix socket path
	timeout time.Duration
}

var _ Scanner = (*ClamAVScanner)(nil)

func NewClamAVScanner(address string, timeout time.Duration) *ClamAVScanner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ClamAVScanner{address: address, timeout: timeout}
}

func (c *ClamAVScanner) Name() string {
	return "clamav"
}

func (c *ClamAVScanner) network() string {
	if strings.HasPrefix(c.address, "/") {
		return "unix"
	}
	return "tcp"
}

func (c *ClamAVScanner) Scan(ctx context.Context, data []byte) ScanResult {
	fail := func(err error) ScanResult {
		return ScanResult{Infected: true, Scanner: c.Name(), Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, c.network(), c.address)
	if err != nil {
		return fail(fmt.Errorf("connect to clamd: %w", err))
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write([]byte("zINSTREAM\x00")); err != nil {
		return fail(fmt.Errorf("send command: %w", err))
	}

	// One chunk: big-endian length prefix, payload, zero-length terminator.
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(data)))
	for _, part := range [][]byte{size[:], data, {0, 0, 0, 0}} {
		if _, err := conn.Write(part); err != nil {
			return fail(fmt.Errorf("stream file: %w", err))
		}
	}

	reply, err := io.ReadAll(io.LimitReader(conn, 1024))
	if err != nil && len(reply) == 0 {
		return fail(fmt.Errorf("read reply: %w", err))
	}
	return parseReply(string(reply))
}

// parseReply interprets clamd output such as "stream: OK",
// "stream: Eicar-Signature FOUND" or "stream: ... ERROR".
func parseReply(reply string) ScanResult {
	result := ScanResult{Scanner: "clamav"}
	reply = strings.TrimSpace(strings.TrimRight(reply, "\x00"))

	switch {
	case strings.HasSuffix(reply, "FOUND"):
		result.Infected = true
		if _, threat, ok := strings.Cut(reply, ":"); ok {
			result.ThreatName = strings.TrimSpace(strings.TrimSuffix(threat, "FOUND"))
		}
	case strings.HasSuffix(reply, "OK"):
	default:
		result.Infected = true
		result.Err = fmt.Errorf("scan error: %s", reply)
	}
	return result
}
