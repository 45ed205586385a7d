//go:build !windows

package debug

import "errors"

func processRSS() (rss, peak uint64, err error) {
	return 0, 0, errors.ErrUnsupported
}
