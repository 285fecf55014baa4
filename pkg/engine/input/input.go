package input

import (
	"context"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// EnableRawMode puts stdin into raw mode so single key presses arrive without
// Enter. The returned function restores the previous state.
func EnableRawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { term.Restore(fd, oldState) }, nil
}

// decodeKeys turns a chunk of raw terminal bytes into key codes.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; a lone ESC is
// the escape key.
func decodeKeys(buf []byte) []string {
	var codes []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 0x1b:
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				switch buf[i+2] {
				case 'A':
					codes = append(codes, "arrow_up")
				case 'B':
					codes = append(codes, "arrow_down")
				case 'C':
					codes = append(codes, "arrow_right")
				case 'D':
					codes = append(codes, "arrow_left")
				}
				// Unknown escape sequences are discarded
				i += 2
				continue
			}
			codes = append(codes, "escape")
		case b == 3:
			codes = append(codes, "ctrl_c")
		case b == ' ':
			codes = append(codes, "space")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b >= 'A' && b <= 'Z':
			codes = append(codes, string(rune(b+'a'-'A')))
		case b > 32 && b < 127:
			codes = append(codes, string(rune(b)))
		}
	}
	return codes
}

// ReadKeys reads raw terminal input from r until ctx is done or r fails and
// sends one RawInput per decoded key. The channel is closed on return.
func ReadKeys(ctx context.Context, r io.Reader, out chan<- RawInput) error {
	defer close(out)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		now := time.Now()
		for _, code := range decodeKeys(buf[:n]) {
			select {
			case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: now}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
