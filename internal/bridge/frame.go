// Package bridge implements the native-messaging transport between the
// agent and the extension service worker: uint32 little-endian length
// prefixed JSON frames on stdin/stdout.
package bridge

import (
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// MaxFrameSize caps inbound and outbound frame bodies. Settings payloads
// are tiny; the cap mainly guards the length prefix against garbage input.
const MaxFrameSize = 1 << 20

func readFrame(r io.Reader) ([]byte, error) {
	var length uint32

	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, errors.Wrap(err, "failed to read frame length")
	}

	if length > MaxFrameSize {
		return nil, errors.Errorf("frame of %d bytes exceeds the %d byte limit", length, MaxFrameSize)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, errors.Wrap(err, "failed to read frame body")
	}

	return body, nil
}

func writeFrame(w io.Writer, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode frame")
	}

	if len(body) > MaxFrameSize {
		return errors.Errorf("frame of %d bytes exceeds the %d byte limit", len(body), MaxFrameSize)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(body))); err != nil {
		return errors.Wrap(err, "failed to write frame length")
	}

	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "failed to write frame body")
	}

	return nil
}
