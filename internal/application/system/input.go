package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps each intent to the keys that trigger it
type KeyBindings struct {
	Up, Down, Left, Right []ebiten.Key
	Attack                []ebiten.Key
	Dash                  []ebiten.Key
}

// DefaultKeyBindings is WASD or arrows to move, J or Z to attack, Space or Shift to dash
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:     []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:   []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:   []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:  []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Attack: []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
		Dash:   []ebiten.Key{ebiten.KeySpace, ebiten.KeyShiftLeft},
	}
}

// KeyboardInput builds one Intent per tick from the keyboard
type KeyboardInput struct {
	bindings KeyBindings
}

// NewKeyboardInput creates a new keyboard input reader
func NewKeyboardInput(bindings KeyBindings) *KeyboardInput {
	return &KeyboardInput{bindings: bindings}
}

// Read samples the keyboard. Movement and attack are held, dash fires only on
// the tick its key goes down.
func (k *KeyboardInput) Read() Intent {
	return k.intent(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

func (k *KeyboardInput) intent(pressed, justPressed func(ebiten.Key) bool) Intent {
	return Intent{
		MoveUp:    anyKey(k.bindings.Up, pressed),
		MoveDown:  anyKey(k.bindings.Down, pressed),
		MoveLeft:  anyKey(k.bindings.Left, pressed),
		MoveRight: anyKey(k.bindings.Right, pressed),
		Attack:    anyKey(k.bindings.Attack, pressed),
		Dash:      anyKey(k.bindings.Dash, justPressed),
	}
}

func anyKey(keys []ebiten.Key, check func(ebiten.Key) bool) bool {
	for _, key := range keys {
		if check(key) {
			return true
		}
	}
	return false
}
