package drag

import (
	"fmt"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

// State состояние жеста перетаскивания
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MoveIntent перенос блока, который вызывающий код применяет через scheduling.MoveBlock
type MoveIntent struct {
	FromIndex int
	ToIndex   int
}

// Preview промежуточный сигнал во время перетаскивания, ничего не меняет
type Preview struct {
	BlockID       string
	ProposedIndex int
}

// Gesture данные, зафиксированные при начале перетаскивания
type Gesture struct {
	BlockID   string
	Kind      domain.BlockKind
	FromIndex int
	ToIndex   int
}

// Applier применяет перенос; вызывается только при завершении жеста с изменившимся индексом
type Applier func(intent MoveIntent) error

// Controller машина состояний Idle -> Dragging -> Committing -> Idle.
// Перенос применяется только на переходе из Dragging, никогда из Move.
// Не предназначен для конкурентного использования: один контроллер на один жест.
type Controller struct {
	layout  Layout
	state   State
	gesture Gesture
}

// NewController создает контроллер поверх разметки дня
func NewController(layout Layout) *Controller {
	return &Controller{layout: layout}
}

// State текущее состояние
func (c *Controller) State() State {
	return c.state
}

// Gesture текущий жест; ok=false в состоянии Idle
func (c *Controller) Gesture() (Gesture, bool) {
	if c.state == StateIdle {
		return Gesture{}, false
	}
	return c.gesture, true
}

// Start начинает перетаскивание блока с позиции fromIndex
func (c *Controller) Start(blockID string, kind domain.BlockKind, fromIndex int) error {
	if c.state != StateIdle {
		return ErrGestureInProgress
	}
	if fromIndex < 0 || fromIndex >= c.layout.Len() {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, fromIndex, c.layout.Len())
	}

	c.gesture = Gesture{
		BlockID:   blockID,
		Kind:      kind,
		FromIndex: fromIndex,
		ToIndex:   fromIndex,
	}
	c.state = StateDragging
	return nil
}

// Move пересчитывает предполагаемую позицию по координате указателя
func (c *Controller) Move(y int) (Preview, error) {
	if c.state != StateDragging {
		return Preview{}, ErrNoGesture
	}
	c.gesture.ToIndex = c.layout.PositionAt(y)
	return Preview{BlockID: c.gesture.BlockID, ProposedIndex: c.gesture.ToIndex}, nil
}

// End завершает жест. Если позиция изменилась, apply вызывается ровно один раз
// в состоянии Committing. После End контроллер всегда возвращается в Idle.
func (c *Controller) End(apply Applier) (MoveIntent, bool, error) {
	if c.state != StateDragging {
		return MoveIntent{}, false, ErrNoGesture
	}
	defer c.reset()

	if c.gesture.ToIndex == c.gesture.FromIndex {
		return MoveIntent{}, false, nil
	}

	intent := MoveIntent{FromIndex: c.gesture.FromIndex, ToIndex: c.gesture.ToIndex}
	c.state = StateCommitting
	if apply != nil {
		if err := apply(intent); err != nil {
			return intent, false, err
		}
	}
	return intent, true, nil
}

// Cancel прерывает жест без применения переноса
func (c *Controller) Cancel() {
	if c.state == StateCommitting {
		return
	}
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.gesture = Gesture{}
}

// Replay проигрывает записанную траекторию указателя через новый контроллер
// и возвращает итоговый перенос. cancelled=true эквивалентен потере указателя.
func Replay(layout Layout, blockID string, kind domain.BlockKind, fromIndex int, track []int, cancelled bool) (MoveIntent, bool, error) {
	c := NewController(layout)
	if err := c.Start(blockID, kind, fromIndex); err != nil {
		return MoveIntent{}, false, err
	}
	for _, y := range track {
		if _, err := c.Move(y); err != nil {
			return MoveIntent{}, false, err
		}
	}
	if cancelled {
		c.Cancel()
		return MoveIntent{}, false, nil
	}
	return c.End(nil)
}
