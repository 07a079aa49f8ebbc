// Feltbutton is the smallest felt program: a beep button, a mute
// check button and an exit button over a flat window, with a status
// bar counting the beeps. It carries the event glue a felt
// application needs: a select loop over the mouse and keyboard that
// arms buttons on press, clicks them on release and keeps the hover
// highlight current.
//
// With -fsys the widget tree is posted as a 9P service of that name,
// so it can be inspected with 9p ls / 9p read while the demo runs.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/feltk/felt"
	"github.com/feltk/felt/draw"
	"github.com/feltk/felt/fsys"
	"github.com/feltk/felt/internal/logger"
	"github.com/feltk/felt/theme"
)

var fontflag = flag.String("f", "", "Label font")
var winsize = flag.String("W", "320x96", "Window size (WidthxHeight)")
var darkflag = flag.Bool("dark", false, "Start with the dark palette")
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
	display, err := dev.NewDisplay(nil, *fontflag, "feltbutton", *winsize)
	if err != nil {
		log.Fatalf("can't open display: %v", err)
	}
	if err := display.Attach(draw.Refnone); err != nil {
		log.Fatalf("can't attach to window: %v", err)
	}
	felt.SetDefaultFont(display.Font())
	if *darkflag {
		felt.SetDarkMode(true)
	}

	p := draw.NewDisplayPainter(display)
	win := felt.NewWindow(p, p.Screen().R())
	root := win.Root()
	root.SetBox(felt.FlatBox)

	status := felt.NewStatusBar(24)
	beep := felt.NewButton(image.Rect(20, 20, 100, 45), "Beep")
	mute := felt.NewCheckButton(image.Rect(120, 20, 200, 45), "mute")
	quit := felt.NewButton(image.Rect(220, 20, 300, 45), "Exit")

	beeps := 0
	beep.OnClick = func() {
		beeps++
		if !mute.Value() {
			fmt.Print("\a")
		}
		status.Setf(felt.Left, "%d beeps", beeps)
	}
	quit.OnClick = func() { os.Exit(0) }

	root.Add(beep)
	root.Add(mute)
	root.Add(quit)
	root.Add(status)
	status.Set("ready", felt.Left)

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
	var pt pointer
	for {
		select {
		case r := <-keyboardctl.C:
			switch r {
			case 'q', 0x7F: // Del
				os.Exit(0)
			case 'd':
				felt.SetDarkMode(!theme.IsDarkMode())
				root.Redraw()
				update()
			}
		case <-mousectl.Resize:
			if err := p.Attach(); err != nil {
				log.Fatalf("can't reattach to window: %v", err)
			}
			win.Resize(p.Screen().R())
			update()
		case m := <-mousectl.C:
			if pt.track(win, m) {
				update()
			}
		}
	}
}

// pointer turns the raw mouse stream into button behavior: hovering
// sets Highlight, pressing arms the button under the pointer and sets
// Pushed while it stays under, releasing over the armed button clicks
// it.
type pointer struct {
	buttons int
	armed   felt.Widget
	hot     felt.Widget
}

func (pt *pointer) track(win *felt.Window, m draw.Mouse) bool {
	pressed := m.Buttons&1 != 0 && pt.buttons&1 == 0
	released := m.Buttons&1 == 0 && pt.buttons&1 != 0
	pt.buttons = m.Buttons

	over := win.WidgetAt(m.Point)
	if !clickable(over) {
		over = nil
	}

	changed := false
	switch {
	case pressed && over != nil:
		pt.armed = over
		pt.armed.SetFlag(felt.Pushed)
		pt.armed.Redraw()
		changed = true
	case released && pt.armed != nil:
		pt.armed.ClearFlag(felt.Pushed)
		pt.armed.Redraw()
		if over == pt.armed {
			click(pt.armed)
		}
		pt.armed = nil
		changed = true
	case pt.armed != nil:
		on := over == pt.armed
		if on != (pt.armed.Flags()&felt.Pushed != 0) {
			if on {
				pt.armed.SetFlag(felt.Pushed)
			} else {
				pt.armed.ClearFlag(felt.Pushed)
			}
			pt.armed.Redraw()
			changed = true
		}
	}

	hot := over
	if pt.armed != nil {
		hot = nil
	}
	if hot != pt.hot {
		if pt.hot != nil {
			pt.hot.ClearFlag(felt.Highlight)
			pt.hot.Redraw()
		}
		if hot != nil {
			hot.SetFlag(felt.Highlight)
			hot.Redraw()
		}
		pt.hot = hot
		changed = true
	}
	return changed
}

func clickable(w felt.Widget) bool {
	if w == nil || w.Flags()&felt.Inactive != 0 {
		return false
	}
	switch w.(type) {
	case *felt.Button, *felt.CheckButton:
		return true
	}
	return false
}

func click(w felt.Widget) {
	switch b := w.(type) {
	case *felt.CheckButton:
		b.Toggle()
		b.Click()
	case *felt.Button:
		b.Click()
	}
}
