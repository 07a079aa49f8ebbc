//go:build windows

package fsys

import (
	"net"

	"github.com/fhs/mux9p"

	"github.com/feltk/felt/internal/logger"
)

// Post serves fs on a local TCP socket, since plan9port namespaces
// are not available on Windows. Clients connect to Addr with
// 9fans.net/go/plan9/client Dial. The service name is accepted for
// symmetry with the unix version and ignored.
func (fs *FS) Post(name string) error {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return err
	}
	p0, p1 := net.Pipe()
	go func() {
		defer l.Close()
		if err := mux9p.Do(l, p0, nil); err != nil {
			logger.Log().Error().Err(err).Msg("9P multiplexer failed")
		}
	}()
	go fs.Serve(p1)
	fs.setAddr(l.Addr())
	logger.Log().Info().Str("addr", l.Addr().String()).Msg("9P inspection server listening")
	return nil
}
