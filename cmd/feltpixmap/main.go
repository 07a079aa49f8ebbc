// Feltpixmap puts an XPM image on a button and lets a row of toggle
// buttons push its alignment around: left, right, top, bottom, inside,
// plus one that makes the button inactive so the image dims. The
// status bar shows the alignment flags the image button carries.
//
// The pixmap is embedded in its C source form; the xpm decoder reads
// the quoted strings straight out of it.
package main

import (
	"flag"
	"image"
	"log"
	"os"
	"strings"

	"github.com/feltk/felt"
	"github.com/feltk/felt/draw"
	"github.com/feltk/felt/fsys"
	"github.com/feltk/felt/internal/logger"
	"github.com/feltk/felt/xpm"
)

const targetXPM = `/* XPM */
static const char *target_xpm[] = {
"16 16 4 1",
"  c None",
". c #000000",
"r c #CC0000",
"w c #FFFFFF",
"                ",
" .............. ",
" .rrrrrrrrrrrr. ",
" .rrrrrrrrrrrr. ",
" .rrwwwwwwwwrr. ",
" .rrwwwwwwwwrr. ",
" .rrwwrrrrwwrr. ",
" .rrwwrrrrwwrr. ",
" .rrwwrrrrwwrr. ",
" .rrwwrrrrwwrr. ",
" .rrwwwwwwwwrr. ",
" .rrwwwwwwwwrr. ",
" .rrrrrrrrrrrr. ",
" .rrrrrrrrrrrr. ",
" .............. ",
"                ",
};
`

var fontflag = flag.String("f", "", "Label font")
var winsize = flag.String("W", "400x400", "Window size (WidthxHeight)")
var debugflag = flag.String("debug", "", "Log level (debug, info, ...)")
var fsysflag = flag.String("fsys", "", "Post the widget tree as this 9P service")

func main() {
	flag.Parse()
	if *debugflag != "" {
		if err := logger.Setup(logger.Options{Level: *debugflag, HumanReadable: true}); err != nil {
			log.Fatalf("bad -debug level: %v", err)
		}
	}
	draw.Main(run)
}

func run(dev *draw.Device) {
	target, err := xpm.Decode(strings.NewReader(targetXPM))
	if err != nil {
		log.Fatalf("bad pixmap: %v", err)
	}

	display, err := dev.NewDisplay(nil, *fontflag, "feltpixmap", *winsize)
	if err != nil {
		log.Fatalf("can't open display: %v", err)
	}
	if err := display.Attach(draw.Refnone); err != nil {
		log.Fatalf("can't attach to window: %v", err)
	}
	felt.SetDefaultFont(display.Font())

	p := draw.NewDisplayPainter(display)
	win := felt.NewWindow(p, p.Screen().R())
	root := win.Root()
	root.SetBox(felt.FlatBox)

	pix := felt.NewButton(image.Rect(140, 160, 260, 280), "Pixmap")
	pix.SetImage(target)
	root.Add(pix)

	status := felt.NewStatusBar(24)

	// One toggle per alignment bit, laid out in a row like the
	// original pixmap demo.
	aligns := []struct {
		label string
		bit   felt.Flags
	}{
		{"left", felt.AlignLeft},
		{"right", felt.AlignRight},
		{"top", felt.AlignTop},
		{"bottom", felt.AlignBottom},
		{"inside", felt.AlignInside},
	}
	toggles := make([]*felt.Button, len(aligns))
	sync := func() {
		var a felt.Flags
		for i, t := range aligns {
			if toggles[i].Value() {
				a |= t.bit
			}
		}
		pix.SetAlign(a)
		pix.Redraw()
		status.Setf(felt.Center, "align %v", a)
	}
	for i, t := range aligns {
		b := felt.NewButton(image.Rect(25+50*i, 50, 75+50*i, 75), t.label)
		b.OnClick = func() {
			b.SetValue(!b.Value())
			sync()
		}
		toggles[i] = b
		root.Add(b)
	}
	inact := felt.NewButton(image.Rect(125, 75, 225, 100), "inactive")
	inact.OnClick = func() {
		inact.SetValue(!inact.Value())
		if inact.Value() {
			pix.SetFlag(felt.Inactive)
		} else {
			pix.ClearFlag(felt.Inactive)
		}
		pix.Redraw()
	}
	root.Add(inact)
	root.Add(status)
	status.Set("align none", felt.Center)

	fs := fsys.New()
	if *fsysflag != "" {
		if err := fs.Post(*fsysflag); err != nil {
			log.Fatalf("can't post %s: %v", *fsysflag, err)
		}
	}
	update := func() {
		if err := win.Update(); err != nil {
			log.Printf("draw: %v", err)
		}
		if *fsysflag != "" {
			fs.Publish(fsys.Scan(root))
		}
	}
	update()

	mousectl := display.InitMouse()
	keyboardctl := display.InitKeyboard()
	var armed *felt.Button
	buttons := 0
	for {
		select {
		case r := <-keyboardctl.C:
			if r == 'q' || r == 0x7F {
				os.Exit(0)
			}
		case <-mousectl.Resize:
			if err := p.Attach(); err != nil {
				log.Fatalf("can't reattach to window: %v", err)
			}
			win.Resize(p.Screen().R())
			update()
		case m := <-mousectl.C:
			pressed := m.Buttons&1 != 0 && buttons&1 == 0
			released := m.Buttons&1 == 0 && buttons&1 != 0
			buttons = m.Buttons
			over, _ := win.WidgetAt(m.Point).(*felt.Button)
			if over != nil && over.Flags()&felt.Inactive != 0 {
				over = nil
			}
			switch {
			case pressed && over != nil:
				armed = over
				armed.SetFlag(felt.Pushed)
				armed.Redraw()
				update()
			case released && armed != nil:
				armed.ClearFlag(felt.Pushed)
				armed.Redraw()
				if over == armed {
					armed.Click()
				}
				armed = nil
				update()
			}
		}
	}
}
