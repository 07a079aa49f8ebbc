//go:build !windows

package fsys

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"9fans.net/go/plan9/client"
	"github.com/fhs/mux9p"

	"github.com/feltk/felt/internal/logger"
)

// Post serves fs under the given service name in the plan9port
// namespace, so clients reach it with 9fans.net/go/plan9/client
// MountService or the plan9port tools. Post returns once the service
// is posted; serving continues on background goroutines for the life
// of the process.
func (fs *FS) Post(name string) error {
	if name == "" {
		return fmt.Errorf("nothing to post")
	}
	p0, p1 := net.Pipe()
	ns := client.Namespace()
	if err := os.MkdirAll(ns, 0700); err != nil {
		return err
	}
	addr := filepath.Join(ns, name)
	go func() {
		if err := mux9p.Listen("unix", addr, p0, nil); err != nil {
			logger.Log().Error().Err(err).Str("addr", addr).Msg("9P multiplexer failed")
		}
	}()
	go fs.Serve(p1)
	fs.setAddr(&net.UnixAddr{Name: addr, Net: "unix"})
	logger.Log().Info().Str("addr", addr).Msg("9P inspection server posted")
	return nil
}
