package fsys

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strconv"
	"time"

	"9fans.net/go/plan9"

	"github.com/feltk/felt/internal/logger"
	"github.com/feltk/felt/internal/ninep"
)

// Errors returned by the file server.
var (
	ErrPermission = os.ErrPermission
	ErrNotExist   = os.ErrNotExist
	ErrNotDir     = fmt.Errorf("not a directory")
)

// Qid path is widget id << 8 | file type. The root directory and its
// files use id 0.
const (
	Qdir uint64 = iota
	Qctl
	Qindex
	Qlog
	Qflags
	Qgeom
	Qlabel
)

func qpath(id int, q uint64) uint64 {
	return uint64(id<<8) | q
}

func qwid(q plan9.Qid) int {
	return int((uint(q.Path) >> 8) & 0xFFFFFF)
}

func qfile(q plan9.Qid) uint64 {
	return q.Path & 0xFF
}

type dirTab struct {
	name string
	t    byte
	qid  uint64
	perm plan9.Perm
}

var dirtab = []*dirTab{
	{".", plan9.QTDIR, Qdir, 0500 | plan9.DMDIR},
	{"ctl", plan9.QTFILE, Qctl, 0400},
	{"index", plan9.QTFILE, Qindex, 0400},
	{"log", plan9.QTFILE, Qlog, 0400},
}

var dirtabw = []*dirTab{
	{".", plan9.QTDIR, Qdir, 0500 | plan9.DMDIR},
	{"flags", plan9.QTFILE, Qflags, 0400},
	{"geom", plan9.QTFILE, Qgeom, 0400},
	{"label", plan9.QTFILE, Qlabel, 0400},
}

// widgetDirTab returns the directory entry for the widget with the
// given id. The qid field stays Qdir; dir fills in the id.
func widgetDirTab(id int) *dirTab {
	return &dirTab{
		name: fmt.Sprintf("%d", id),
		t:    plan9.QTDIR,
		qid:  Qdir,
		perm: plan9.DMDIR | 0500,
	}
}

// dir converts dt to a plan9.Dir for the widget with the given id.
// Username and group are set to user, Atime and Mtime to clock.
func (dt *dirTab) dir(id int, user string, clock int64) *plan9.Dir {
	return &plan9.Dir{
		Qid: plan9.Qid{
			Path: qpath(id, dt.qid),
			Vers: 0,
			Type: dt.t,
		},
		Mode:   dt.perm,
		Atime:  uint32(clock),
		Mtime:  uint32(clock),
		Length: 0,
		Name:   dt.name,
		Uid:    user,
		Gid:    user,
		Muid:   user,
	}
}

type fid struct {
	fid  uint32
	busy bool
	open bool
	qid  plan9.Qid
	dir  *dirTab
}

type fsfunc func(*plan9.Fcall, *fid) error

// fileServer runs the 9P2000 loop for one connection. All files are
// read-only snapshots, so every request is answered synchronously.
type fileServer struct {
	fs          *FS
	conn        io.ReadWriteCloser
	fids        map[uint32]*fid
	fcall       []fsfunc
	username    string
	messagesize int
}

func (s *fileServer) initfcall() {
	s.fcall = make([]fsfunc, plan9.Tmax)
	s.fcall[plan9.Tflush] = s.flush
	s.fcall[plan9.Tversion] = s.version
	s.fcall[plan9.Tauth] = s.auth
	s.fcall[plan9.Tattach] = s.attach
	s.fcall[plan9.Twalk] = s.walk
	s.fcall[plan9.Topen] = s.open
	s.fcall[plan9.Tcreate] = s.create
	s.fcall[plan9.Tread] = s.read
	s.fcall[plan9.Twrite] = s.write
	s.fcall[plan9.Tclunk] = s.clunk
	s.fcall[plan9.Tremove] = s.remove
	s.fcall[plan9.Tstat] = s.stat
	s.fcall[plan9.Twstat] = s.wstat
}

// Serve answers 9P requests on conn until it closes. It returns nil
// when the peer hangs up and the transport error otherwise. Serve may
// run concurrently for several connections of the same FS.
func (fs *FS) Serve(conn io.ReadWriteCloser) error {
	s := &fileServer{
		fs:       fs,
		conn:     conn,
		fids:     make(map[uint32]*fid),
		username: getuser(),
	}
	s.initfcall()
	return s.serve()
}

func (s *fileServer) serve() error {
	for {
		fc, err := plan9.ReadFcall(s.conn)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			logger.Log().Debug().Err(err).Msg("fsys connection closed")
			return err
		}
		var f *fid
		switch fc.Type {
		case plan9.Tversion, plan9.Tauth, plan9.Tflush:
			f = nil
		case plan9.Tattach:
			f = s.newfid(fc.Fid)
		default:
			f = s.newfid(fc.Fid)
			if !f.busy {
				if err := s.respond(fc, nil, fmt.Errorf("fid not in use")); err != nil {
					return err
				}
				continue
			}
		}
		if err := s.fcall[fc.Type](fc, f); err != nil {
			return err
		}
	}
}

func (s *fileServer) newfid(num uint32) *fid {
	ff, ok := s.fids[num]
	if !ok {
		ff = &fid{fid: num}
		s.fids[num] = ff
	}
	return ff
}

func (s *fileServer) respond(fc *plan9.Fcall, t *plan9.Fcall, err error) error {
	if t == nil {
		t = &plan9.Fcall{}
	}
	if err != nil {
		t.Type = plan9.Rerror
		t.Ename = err.Error()
	} else {
		t.Type = fc.Type + 1
	}
	t.Fid = fc.Fid
	t.Tag = fc.Tag
	return plan9.WriteFcall(s.conn, t)
}

func (s *fileServer) version(fc *plan9.Fcall, _ *fid) error {
	var t plan9.Fcall
	s.messagesize = int(fc.Msize)
	t.Msize = fc.Msize
	if fc.Version != "9P2000" {
		return s.respond(fc, &t, fmt.Errorf("unrecognized 9P version"))
	}
	t.Version = "9P2000"
	return s.respond(fc, &t, nil)
}

func (s *fileServer) auth(fc *plan9.Fcall, _ *fid) error {
	return s.respond(fc, nil, fmt.Errorf("felt: authentication not required"))
}

// flush has nothing to cancel: every request is answered before the
// next one is read.
func (s *fileServer) flush(fc *plan9.Fcall, _ *fid) error {
	return s.respond(fc, nil, nil)
}

func (s *fileServer) attach(fc *plan9.Fcall, f *fid) error {
	if fc.Uname != s.username {
		// Some client libraries guess the user name; allow the
		// mismatch.
		logger.Log().Debug().Str("uname", fc.Uname).Str("user", s.username).
			Msg("fsys attach uname mismatch")
	}
	f.busy = true
	f.open = false
	f.qid = plan9.Qid{Path: qpath(0, Qdir), Vers: 0, Type: plan9.QTDIR}
	f.dir = dirtab[0] // '.'
	t := plan9.Fcall{Qid: f.qid}
	logger.Log().Debug().Str("uname", fc.Uname).Msg("fsys attach")
	return s.respond(fc, &t, nil)
}

func (s *fileServer) walk(fc *plan9.Fcall, f *fid) error {
	var t plan9.Fcall

	if f.open {
		return s.respond(fc, &t, fmt.Errorf("walk of open file"))
	}
	var nf *fid
	if fc.Fid != fc.Newfid { // clone fid
		nf = s.newfid(fc.Newfid)
		if nf.busy {
			return s.respond(fc, &t, fmt.Errorf("newfid already in use"))
		}
		nf.busy = true
		nf.open = false
		nf.dir = f.dir
		nf.qid = f.qid
		f = nf // walk f
	}

	t.Wqid = nil
	var err error
	wf := &fid{qid: f.qid, dir: f.dir}

	if len(fc.Wname) > 0 {
		snap := s.fs.snapshot()
		var i int
		for i = 0; i < len(fc.Wname); i++ {
			var found bool
			found, err = wf.walk1(fc.Wname[i], snap)
			if err != nil || !found {
				break
			}
			if i == plan9.MAXWELEM {
				err = fmt.Errorf("name too long")
				break
			}
			t.Wqid = append(t.Wqid, wf.qid)
		}

		// If we never incremented
		if i == 0 && err == nil {
			err = ErrNotExist
		}
	}

	if err != nil || len(t.Wqid) < len(fc.Wname) {
		if nf != nil {
			nf.busy = false
		}
	} else if len(t.Wqid) == len(fc.Wname) {
		f.dir = wf.dir
		f.qid = wf.qid
	}

	return s.respond(fc, &t, err)
}

// walk1 advances f by one path element. found reports whether wname
// exists under f in the tree described by snap.
func (f *fid) walk1(wname string, snap *snapshot) (found bool, err error) {
	if f.qid.Type&plan9.QTDIR == 0 {
		return false, ErrNotDir
	}

	if wname == ".." {
		f.qid = plan9.Qid{Path: qpath(0, Qdir), Vers: 0, Type: plan9.QTDIR}
		f.dir = dirtab[0]
		return true, nil
	}

	// Numeric names are widget directories.
	if id64, e := strconv.ParseInt(wname, 10, 32); e == nil {
		if qwid(f.qid) != 0 { // nothing nests below a widget directory
			return false, nil
		}
		id := int(id64)
		if snap.entry(id) == nil {
			return false, nil
		}
		f.dir = dirtabw[0] // '.'
		f.qid = plan9.Qid{Path: qpath(id, Qdir), Vers: 0, Type: plan9.QTDIR}
		return true, nil
	}

	id := qwid(f.qid)
	d := dirtab
	if id != 0 {
		d = dirtabw
	}
	for _, de := range d[1:] {
		if wname == de.name {
			f.dir = de
			f.qid = plan9.Qid{Path: qpath(id, de.qid), Vers: 0, Type: de.t}
			return true, nil
		}
	}
	return false, nil // file not found
}

func (s *fileServer) open(fc *plan9.Fcall, f *fid) error {
	var m plan9.Perm
	// can't truncate anything, so just disregard
	fc.Mode &= ^uint8(plan9.OTRUNC | plan9.OCEXEC)
	// can't execute or remove anything
	if fc.Mode == plan9.OEXEC || (fc.Mode&plan9.ORCLOSE) != 0 {
		return s.respond(fc, nil, ErrPermission)
	}
	switch fc.Mode {
	case plan9.OREAD:
		m = 0400
	case plan9.OWRITE:
		m = 0200
	case plan9.ORDWR:
		m = 0600
	default:
		return s.respond(fc, nil, ErrPermission)
	}
	if ((f.dir.perm &^ plan9.DMDIR) & m) != m {
		return s.respond(fc, nil, ErrPermission)
	}
	f.open = true
	t := plan9.Fcall{Qid: f.qid}
	return s.respond(fc, &t, nil)
}

func (s *fileServer) create(fc *plan9.Fcall, _ *fid) error {
	return s.respond(fc, nil, ErrPermission)
}

func (s *fileServer) read(fc *plan9.Fcall, f *fid) error {
	if f.qid.Type&plan9.QTDIR != 0 {
		return s.readdir(fc, f)
	}

	snap := s.fs.snapshot()
	var text string
	switch qfile(f.qid) {
	case Qctl:
		text = snap.ctlText()
	case Qindex:
		text = snap.indexText()
	case Qlog:
		text = s.fs.logText()
	case Qflags, Qgeom, Qlabel:
		e := snap.entry(qwid(f.qid))
		if e == nil { // widget gone since the walk
			return s.respond(fc, nil, ErrNotExist)
		}
		switch qfile(f.qid) {
		case Qflags:
			text = e.flagsText()
		case Qgeom:
			text = e.geomText()
		case Qlabel:
			text = e.labelText()
		}
	default:
		return s.respond(fc, nil, ErrNotExist)
	}

	var t plan9.Fcall
	ninep.ReadString(&t, fc, text)
	return s.respond(fc, &t, nil)
}

func (s *fileServer) readdir(fc *plan9.Fcall, f *fid) error {
	clock := getclock()
	snap := s.fs.snapshot()
	id := qwid(f.qid)
	d := dirtab
	var ids []int
	if id != 0 {
		d = dirtabw
	} else {
		ids = snap.ids()
	}
	d = d[1:] // Skip '.'

	var t plan9.Fcall
	ninep.DirRead(&t, fc, func(i int) *plan9.Dir {
		if i < len(d) {
			return d[i].dir(id, s.username, clock)
		}
		i -= len(d)
		if i < len(ids) {
			k := ids[i]
			return widgetDirTab(k).dir(k, s.username, clock)
		}
		return nil
	})
	return s.respond(fc, &t, nil)
}

func (s *fileServer) write(fc *plan9.Fcall, _ *fid) error {
	return s.respond(fc, nil, ErrPermission)
}

func (s *fileServer) clunk(fc *plan9.Fcall, f *fid) error {
	f.busy = false
	f.open = false
	return s.respond(fc, nil, nil)
}

func (s *fileServer) remove(fc *plan9.Fcall, _ *fid) error {
	return s.respond(fc, nil, ErrPermission)
}

func (s *fileServer) stat(fc *plan9.Fcall, f *fid) error {
	var t plan9.Fcall

	t.Stat = make([]byte, s.messagesize-plan9.IOHDRSZ)
	b, _ := f.dir.dir(qwid(f.qid), s.username, getclock()).Bytes()
	if len(b) > len(t.Stat) {
		// don't send partial directory entry
		return s.respond(fc, nil, fmt.Errorf("msize too small"))
	}
	n := copy(t.Stat, b)
	t.Stat = t.Stat[:n]
	return s.respond(fc, &t, nil)
}

func (s *fileServer) wstat(fc *plan9.Fcall, _ *fid) error {
	return s.respond(fc, nil, ErrPermission)
}

func getclock() int64 {
	return time.Now().Unix()
}

func getuser() string {
	user, err := user.Current()
	if err != nil {
		// Same as https://9fans.github.io/usr/local/plan9/src/lib9/getuser.c
		return "none"
	}
	return user.Username
}
