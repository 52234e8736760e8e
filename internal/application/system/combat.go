package system

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/younwookim/lootrun/internal/domain/entity"
	"github.com/younwookim/lootrun/internal/domain/world"
	"github.com/younwookim/lootrun/internal/infrastructure/logger"
)

// CombatResult summarizes one interaction pass
type CombatResult struct {
	Hits         int
	Kills        int
	ChestsOpened int
	Gold         int // gold moved to the player this pass
}

// CombatSystem resolves player attacks against chests and enemies
type CombatSystem struct {
	log *logrus.Entry

	// Event callbacks
	OnEnemyHit    func(enemy *entity.Enemy)
	OnEnemyKilled func(enemy *entity.Enemy)
	OnChestOpened func(chest *entity.Chest)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{log: logger.For("combat")}
}

// Resolve runs the interaction pass. Nothing happens unless attack is held.
// Every overlap is resolved in the same pass; killed enemies are removed
// after the pass so the enemy slice is never modified while iterated.
func (s *CombatSystem) Resolve(w *world.World, in Intent) CombatResult {
	var res CombatResult
	if !in.Attack {
		return res
	}

	player := w.Player
	px, py, pw, ph := player.GetHitbox()

	for _, chest := range w.Chests {
		if chest.Open {
			continue
		}
		cx, cy, cw, ch := chest.GetHitbox()
		if !entity.RectsOverlap(px, py, pw, ph, cx, cy, cw, ch) {
			continue
		}

		gold := chest.TryOpen()
		player.AddGold(gold)
		res.ChestsOpened++
		res.Gold += gold

		s.log.WithFields(logrus.Fields{"gold": gold, "x": chest.X, "y": chest.Y}).Debug("chest opened")
		if s.OnChestOpened != nil {
			s.OnChestOpened(chest)
		}
	}

	pending := mapset.New[entity.EntityID]()
	for _, enemy := range w.Enemies {
		if pending.Has(enemy.ID) || !enemy.IsAlive() {
			continue
		}
		ex, ey, ew, eh := enemy.GetHitbox()
		if !entity.RectsOverlap(px, py, pw, ph, ex, ey, ew, eh) {
			continue
		}

		killed := enemy.TakeDamage(player.AttackPower)
		res.Hits++
		if s.OnEnemyHit != nil {
			s.OnEnemyHit(enemy)
		}

		if killed {
			// Loot moves at the killing blow, not on removal
			player.AddGold(enemy.Gold)
			res.Gold += enemy.Gold
			enemy.Gold = 0
			pending.Put(enemy.ID)
			res.Kills++

			s.log.WithFields(logrus.Fields{"enemy": enemy.ID, "gold": player.Gold}).Debug("enemy killed")
			if s.OnEnemyKilled != nil {
				s.OnEnemyKilled(enemy)
			}
		}
	}

	if pending.Size() > 0 {
		w.RemoveEnemies(func(e *entity.Enemy) bool { return pending.Has(e.ID) })
	}

	return res
}
