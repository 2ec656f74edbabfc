package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/motorscope/internal/engine/input"
)

var keymap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_TAB:    input.KeyTab,
	sdl.SCANCODE_SPACE:  input.KeySpace,
	sdl.SCANCODE_F12:    input.KeyF12,
	sdl.SCANCODE_M:      input.KeyM,
	sdl.SCANCODE_G:      input.KeyG,
	sdl.SCANCODE_B:      input.KeyB,
	sdl.SCANCODE_F:      input.KeyF,
	sdl.SCANCODE_LEFT:   input.KeyLeft,
	sdl.SCANCODE_RIGHT:  input.KeyRight,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_0:      input.Key0,
	sdl.SCANCODE_1:      input.Key1,
	sdl.SCANCODE_2:      input.Key2,
	sdl.SCANCODE_3:      input.Key3,
	sdl.SCANCODE_4:      input.Key4,
	sdl.SCANCODE_5:      input.Key5,
	sdl.SCANCODE_6:      input.Key6,
	sdl.SCANCODE_7:      input.Key7,
	sdl.SCANCODE_8:      input.Key8,
	sdl.SCANCODE_9:      input.Key9,
}

// PollEvents drains the SDL queue into q.
func (w *Window) PollEvents(q *input.Queue) {
	q.Reset()
	width, height := w.GetSize()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			q.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				q.Push(input.Event{Type: input.EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			k, ok := keymap[e.Keysym.Scancode]
			if !ok {
				continue
			}
			typ := input.EventKeyUp
			if e.Type == sdl.KEYDOWN {
				typ = input.EventKeyDown
			}
			q.Push(input.Event{Type: typ, Key: k})

		case *sdl.MouseMotionEvent:
			if e.Which == sdl.TOUCH_MOUSEID {
				continue
			}
			q.Push(input.Event{Type: input.EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)})

		case *sdl.MouseButtonEvent:
			if e.Which == sdl.TOUCH_MOUSEID {
				continue
			}
			typ := input.EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = input.EventMouseDown
			}
			q.Push(input.Event{Type: typ, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button})

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			q.Push(input.Event{Type: input.EventWheel, Wheel: dy})

		case *sdl.TouchFingerEvent:
			ev := input.Event{
				Finger: int64(e.FingerID),
				MouseX: int(e.X * float32(width)),
				MouseY: int(e.Y * float32(height)),
			}
			switch e.Type {
			case sdl.FINGERDOWN:
				ev.Type = input.EventTouchDown
			case sdl.FINGERMOTION:
				ev.Type = input.EventTouchMove
			case sdl.FINGERUP:
				ev.Type = input.EventTouchUp
			}
			q.Push(ev)
		}
	}
}
