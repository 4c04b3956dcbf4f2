package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// isJustTouchedOrClicked 检查本帧是否刚刚发生点击或触摸
// 返回是否点击以及点击位置，触摸优先
func isJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// pointerPosition 当前指针位置（触摸或鼠标）
func pointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// cardHotkeys 数字键与卡牌的对应关系，顺序同 types.AllUnitKinds
var cardHotkeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
