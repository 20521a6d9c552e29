package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/glide"
)

// maxPointers is the number of pointer slots: slot 0 is the mouse, 1-9 are
// touches.
const maxPointers = 10

// wheelLinePixels converts ebiten's wheel offset (lines, positive up) into
// the pixel deltas glide expects (positive down).
const wheelLinePixels = 40

type touchPoint struct {
	id   ebiten.TouchID
	x, y float64
}

// inputState is one Update's worth of raw input.
type inputState struct {
	cursorX, cursorY float64
	mouseDown        bool
	wheelY           float64
	touches          []touchPoint
}

// inputSource fills an inputState from the platform.
type inputSource interface {
	poll(dst *inputState)
}

// ebitenInput reads input from the running ebiten game loop.
type ebitenInput struct {
	ids []ebiten.TouchID
}

func (in *ebitenInput) poll(dst *inputState) {
	mx, my := ebiten.CursorPosition()
	dst.cursorX, dst.cursorY = float64(mx), float64(my)
	dst.mouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	_, wy := ebiten.Wheel()
	dst.wheelY = wy

	in.ids = ebiten.AppendTouchIDs(in.ids[:0])
	dst.touches = dst.touches[:0]
	for _, id := range in.ids {
		tx, ty := ebiten.TouchPosition(id)
		dst.touches = append(dst.touches, touchPoint{id: id, x: float64(tx), y: float64(ty)})
	}
}

// pointerSlot is the last known state of one glide pointer.
type pointerSlot struct {
	down bool
	x, y float64
	// button is set when the press began on a HUD zoom button; such presses
	// never reach the engine.
	button int
}

// process turns one frame of raw input into engine events.
func (h *Host) process(in *inputState) {
	h.processPointer(0, in.cursorX, in.cursorY, in.mouseDown)
	h.processTouches(in.touches)

	if in.wheelY != 0 {
		h.engine.Wheel(glide.WheelEvent{
			X:      in.cursorX,
			Y:      in.cursorY,
			DeltaY: -in.wheelY * wheelLinePixels,
		})
	}
}

// processTouches maps touches onto slots 1-9 and releases slots whose touch
// has ended.
func (h *Host) processTouches(touches []touchPoint) {
	var active [maxPointers]bool
	for _, tp := range touches {
		slot := h.touchSlot(tp.id)
		if slot < 0 {
			continue
		}
		active[slot] = true
		h.processPointer(slot, tp.x, tp.y, true)
	}
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !active[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, ps.x, ps.y, false)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release edge detection for one slot.
func (h *Host) processPointer(slot int, x, y float64, pressed bool) {
	ps := &h.pointers[slot]
	id := glide.PointerID(slot)
	moved := x != ps.x || y != ps.y
	ps.x, ps.y = x, y

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = h.buttonAt(x, y)
		if ps.button != 0 {
			return
		}
		h.engine.PointerDown(glide.PointerEvent{ID: id, X: x, Y: y})
	case pressed && ps.down:
		if ps.button == 0 && moved {
			h.engine.PointerMove(glide.PointerEvent{ID: id, X: x, Y: y})
		}
	case !pressed && ps.down:
		ps.down = false
		if ps.button != 0 {
			if h.buttonAt(x, y) == ps.button {
				h.pressButton(ps.button)
			}
			ps.button = 0
			return
		}
		h.engine.PointerUp(glide.PointerEvent{ID: id, X: x, Y: y})
	}
}
