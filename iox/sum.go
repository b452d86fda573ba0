package iox

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum64 returns the xxHash64 digest of target's content. Targets are read
// exactly as Read reads them, so a reader is consumed.
func (x *IO) Sum64(target any) (sum uint64, err error) {
	r, release, err := x.reader(target)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := release(); err == nil {
			err = cerr
		}
	}()

	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}
