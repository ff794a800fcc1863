package http

import (
	"io"

	"github.com/indigo-web/utils/uf"
)

// BodyString reads the whole body. Bodies knowing how to represent themselves as a string
// are asked to do so, seekable ones are rewound first. nil body is considered empty.
func BodyString(body io.Reader) (string, error) {
	switch b := body.(type) {
	case nil:
		return "", nil
	case interface{ ReadString() (string, error) }:
		return b.ReadString()
	case io.Seeker:
		if _, err := b.Seek(0, io.SeekStart); err != nil {
			return "", err
		}
	}

	data, err := io.ReadAll(body)

	return uf.B2S(data), err
}
