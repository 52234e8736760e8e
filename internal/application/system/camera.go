package system

import "github.com/younwookim/lootrun/internal/domain/world"

// FollowPlayer moves the camera one smoothing step toward the player's center
func FollowPlayer(w *world.World) {
	cx, cy := w.Player.Center()
	mapW, mapH := w.Bounds()
	w.Camera.Update(cx, cy, mapW, mapH)
}
