package systems

import (
	"testing"

	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/entities"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/types"
)

// testWorld 测试用的最小世界
type testWorld struct {
	em         *ecs.EntityManager
	balance    *config.BalanceConfig
	dispatcher *event.Dispatcher
	recorder   *event.Recorder
	behavior   *BehaviorSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		em:         ecs.NewEntityManager(),
		balance:    config.DefaultBalanceConfig(),
		dispatcher: event.NewDispatcher(),
		recorder:   &event.Recorder{},
	}
	w.dispatcher.SubscribeAll(w.recorder)
	w.behavior = NewBehaviorSystem(w.em, w.dispatcher)
	return w
}

func (w *testWorld) tower(t *testing.T, team types.Team, kind types.TowerKind) ecs.EntityID {
	t.Helper()
	id, err := entities.NewTowerEntity(w.em, w.balance, team, kind)
	if err != nil {
		t.Fatalf("NewTowerEntity failed: %v", err)
	}
	return id
}

func (w *testWorld) unit(t *testing.T, team types.Team, kind types.UnitKind, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewUnitEntity(w.em, w.balance, team, kind, x, y)
	if err != nil {
		t.Fatalf("NewUnitEntity failed: %v", err)
	}
	return id
}

func (w *testWorld) health(id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	return h
}

func (w *testWorld) combat(id ecs.EntityID) *components.CombatComponent {
	c, _ := ecs.GetComponent[*components.CombatComponent](w.em, id)
	return c
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return p
}

func TestInactiveKingNeverAttacks(t *testing.T) {
	w := newTestWorld(t)
	king := w.tower(t, types.TeamPlayer, types.TowerKing) // (200, 520)，射程 140
	enemy := w.unit(t, types.TeamEnemy, types.UnitMelee, 200, 420)

	for i := 0; i < 100; i++ {
		w.behavior.handleTowerBehavior(king, 0.25)
	}

	if w.health(enemy).CurrentHealth != 1400 {
		t.Errorf("Inactive king dealt damage, enemy health %d", w.health(enemy).CurrentHealth)
	}
	if w.combat(king).TimeSinceLastAttack != 0 {
		t.Errorf("Inactive king should not accumulate time, got %v", w.combat(king).TimeSinceLastAttack)
	}
	if w.combat(king).HasTarget() {
		t.Error("Inactive king should not acquire targets")
	}
}

func TestKingActivatesOnFirstDamage(t *testing.T) {
	w := newTestWorld(t)
	king := w.tower(t, types.TeamPlayer, types.TowerKing)
	enemy := w.unit(t, types.TeamEnemy, types.UnitMelee, 200, 420)

	// 0 伤害也会激活主塔
	ApplyDamage(w.em, w.dispatcher, king, 0)

	tower, _ := ecs.GetComponent[*components.TowerComponent](w.em, king)
	if !tower.IsActive {
		t.Fatal("King should be active after being hit")
	}
	if w.health(king).CurrentHealth != 4000 {
		t.Errorf("Zero damage should not change health, got %d", w.health(king).CurrentHealth)
	}
	if w.recorder.Count(event.TowerActivated) != 1 {
		t.Fatalf("Expected 1 TowerActivated event, got %d", w.recorder.Count(event.TowerActivated))
	}
	data := w.recorder.Events[0].Data.(event.TowerActivatedData)
	if data.Entity != king || data.Team != types.TeamPlayer {
		t.Errorf("Unexpected activation data: %+v", data)
	}

	// 再次受伤不会重复激活
	ApplyDamage(w.em, w.dispatcher, king, 10)
	if w.recorder.Count(event.TowerActivated) != 1 {
		t.Error("Activation should happen only once")
	}

	// 激活后按 1/0.8 = 1.25 秒的间隔攻击
	for i := 0; i < 4; i++ {
		w.behavior.handleTowerBehavior(king, 0.25)
	}
	if w.health(enemy).CurrentHealth != 1400 {
		t.Fatalf("King attacked before its interval elapsed, enemy health %d", w.health(enemy).CurrentHealth)
	}
	w.behavior.handleTowerBehavior(king, 0.25)
	if w.health(enemy).CurrentHealth != 1400-150 {
		t.Errorf("Expected enemy health %d, got %d", 1400-150, w.health(enemy).CurrentHealth)
	}
	if w.combat(king).TimeSinceLastAttack != 0 {
		t.Error("Attack should reset the accumulator")
	}
}

func TestTowerTargeting(t *testing.T) {
	t.Run("只在射程内严格小于射程的位置索敌", func(t *testing.T) {
		w := newTestWorld(t)
		flank := w.tower(t, types.TeamPlayer, types.TowerFlankLeft) // (100, 440)，射程 120
		w.unit(t, types.TeamEnemy, types.UnitMelee, 100, 320)     // 距离恰好 120

		w.behavior.handleTowerBehavior(flank, 0.1)
		if w.combat(flank).HasTarget() {
			t.Error("Candidate exactly at range should not be acquired")
		}
	})

	t.Run("选择最近的敌人", func(t *testing.T) {
		w := newTestWorld(t)
		flank := w.tower(t, types.TeamPlayer, types.TowerFlankLeft)
		w.unit(t, types.TeamEnemy, types.UnitMelee, 100, 360)
		near := w.unit(t, types.TeamEnemy, types.UnitRanged, 100, 400)
		w.unit(t, types.TeamPlayer, types.UnitMelee, 100, 430) // 友军忽略

		w.behavior.handleTowerBehavior(flank, 0.1)
		if w.combat(flank).Target != near {
			t.Errorf("Expected nearest enemy %d, got %d", near, w.combat(flank).Target)
		}
	})

	t.Run("距离相同时先创建的胜出", func(t *testing.T) {
		w := newTestWorld(t)
		flank := w.tower(t, types.TeamPlayer, types.TowerFlankLeft)
		first := w.unit(t, types.TeamEnemy, types.UnitMelee, 60, 410)
		w.unit(t, types.TeamEnemy, types.UnitMelee, 140, 410)

		w.behavior.handleTowerBehavior(flank, 0.1)
		if w.combat(flank).Target != first {
			t.Errorf("Expected first-created enemy %d, got %d", first, w.combat(flank).Target)
		}
	})

	t.Run("目标离开射程后丢弃", func(t *testing.T) {
		w := newTestWorld(t)
		flank := w.tower(t, types.TeamPlayer, types.TowerFlankLeft)
		enemy := w.unit(t, types.TeamEnemy, types.UnitMelee, 100, 400)

		w.behavior.handleTowerBehavior(flank, 0.1)
		if w.combat(flank).Target != enemy {
			t.Fatal("Tower should target the enemy in range")
		}

		w.position(enemy).Y = 200
		w.behavior.handleTowerBehavior(flank, 0.1)
		if w.combat(flank).HasTarget() {
			t.Error("Tower should drop a target that left its range")
		}
	})

	t.Run("目标在射程边界上仍保持锁定", func(t *testing.T) {
		w := newTestWorld(t)
		flank := w.tower(t, types.TeamPlayer, types.TowerFlankLeft)
		enemy := w.unit(t, types.TeamEnemy, types.UnitMelee, 100, 400)

		w.behavior.handleTowerBehavior(flank, 0.1)
		w.position(enemy).Y = 320 // 距离恰好 120
		w.behavior.handleTowerBehavior(flank, 0.1)
		if w.combat(flank).Target != enemy {
			t.Error("Existing target at exactly range should be kept")
		}
	})
}

func TestTankTargetsTowersOnly(t *testing.T) {
	w := newTestWorld(t)
	tower := w.tower(t, types.TeamEnemy, types.TowerFlankLeft) // (100, 160)
	tank := w.unit(t, types.TeamPlayer, types.UnitTank, 100, 300)
	closer := w.unit(t, types.TeamEnemy, types.UnitMelee, 100, 280)

	w.behavior.handleUnitBehavior(tank, 0.1)
	if w.combat(tank).Target != tower {
		t.Errorf("Tank should target tower %d, got %d (closer unit %d)", tower, w.combat(tank).Target, closer)
	}

	// 普通近战单位会选择更近的单位
	melee := w.unit(t, types.TeamPlayer, types.UnitMelee, 100, 300)
	w.behavior.handleUnitBehavior(melee, 0.1)
	if w.combat(melee).Target != closer {
		t.Errorf("Melee should target closer unit %d, got %d", closer, w.combat(melee).Target)
	}
}

func TestUnitMovement(t *testing.T) {
	t.Run("没有目标时向默认行前进", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.unit(t, types.TeamPlayer, types.UnitMelee, 150, 450)

		w.behavior.Update(1.0)
		pos := w.position(id)
		if pos.X != 150 || pos.Y != 400 {
			t.Errorf("Expected (150, 400), got (%v, %v)", pos.X, pos.Y)
		}
	})

	t.Run("到达默认行后停止", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.unit(t, types.TeamEnemy, types.UnitMelee, 150, 497)

		w.behavior.Update(1.0)
		pos := w.position(id)
		if pos.Y != 497 {
			t.Errorf("Unit within snap threshold should not move, got y=%v", pos.Y)
		}
	})

	t.Run("单位追击离开射程的目标", func(t *testing.T) {
		w := newTestWorld(t)
		hunter := w.unit(t, types.TeamPlayer, types.UnitMelee, 200, 400)
		prey := w.unit(t, types.TeamEnemy, types.UnitRanged, 200, 380) // 射程内

		w.behavior.handleUnitBehavior(hunter, 0.1)
		if w.combat(hunter).Target != prey {
			t.Fatal("Hunter should target the prey")
		}

		// 猎物跑远，另一个敌人更近，但单位不会换目标
		w.position(prey).Y = 100
		decoy := w.unit(t, types.TeamEnemy, types.UnitMelee, 200, 350)
		w.behavior.handleUnitBehavior(hunter, 1.0)

		if w.combat(hunter).Target != prey {
			t.Errorf("Unit should keep chasing its target, switched to %d (decoy %d)", w.combat(hunter).Target, decoy)
		}
		if pos := w.position(hunter); pos.Y != 350 {
			t.Errorf("Hunter should move 50 towards prey, got y=%v", pos.Y)
		}
	})

	t.Run("射程内不移动", func(t *testing.T) {
		w := newTestWorld(t)
		archer := w.unit(t, types.TeamPlayer, types.UnitRanged, 200, 400)
		w.unit(t, types.TeamEnemy, types.UnitMelee, 200, 300) // 距离 100 < 110

		w.behavior.handleUnitBehavior(archer, 0.5)
		if pos := w.position(archer); pos.X != 200 || pos.Y != 400 {
			t.Errorf("Archer in range should not move, got (%v, %v)", pos.X, pos.Y)
		}
	})
}

func TestUnitAttackCadence(t *testing.T) {
	w := newTestWorld(t)
	attacker := w.unit(t, types.TeamPlayer, types.UnitMelee, 200, 400)
	target := w.unit(t, types.TeamEnemy, types.UnitTank, 200, 370) // 距离 30 < 35

	// 间隔 1/1.2 ≈ 0.833 秒
	w.behavior.handleUnitBehavior(attacker, 0.5)
	if w.health(target).CurrentHealth != 2800 {
		t.Fatal("Attack happened before interval")
	}
	w.behavior.handleUnitBehavior(attacker, 0.5)
	if w.health(target).CurrentHealth != 2800-140 {
		t.Fatalf("Expected one attack, health %d", w.health(target).CurrentHealth)
	}
	w.behavior.handleUnitBehavior(attacker, 0.5)
	w.behavior.handleUnitBehavior(attacker, 0.5)
	if w.health(target).CurrentHealth != 2800-280 {
		t.Errorf("Expected two attacks, health %d", w.health(target).CurrentHealth)
	}
}

func TestDeadEntitiesDoNotAct(t *testing.T) {
	w := newTestWorld(t)
	first := w.unit(t, types.TeamPlayer, types.UnitMelee, 200, 400)
	second := w.unit(t, types.TeamEnemy, types.UnitMelee, 200, 380)

	// 让后行动的单位只剩一击，并让双方都已就绪
	w.health(second).CurrentHealth = 100
	w.combat(first).TimeSinceLastAttack = 1
	w.combat(second).TimeSinceLastAttack = 1

	w.behavior.Update(0.1)

	if w.health(second).IsAlive {
		t.Fatal("Second unit should be killed by the first")
	}
	if w.health(first).CurrentHealth != 1400 {
		t.Errorf("Unit killed earlier in the pass should not attack, first health %d", w.health(first).CurrentHealth)
	}
}

func TestCleanupSystem(t *testing.T) {
	w := newTestWorld(t)
	a := w.unit(t, types.TeamPlayer, types.UnitMelee, 0, 0)
	b := w.unit(t, types.TeamEnemy, types.UnitRanged, 0, 0)
	c := w.unit(t, types.TeamPlayer, types.UnitTank, 0, 0)

	w.health(b).TakeDamage(10000)

	cleanup := NewCleanupSystem(w.em, w.dispatcher)
	if n := cleanup.Update(); n != 1 {
		t.Fatalf("Expected 1 removal, got %d", n)
	}

	remaining := w.em.Entities()
	if len(remaining) != 2 || remaining[0] != a || remaining[1] != c {
		t.Errorf("Unexpected remaining entities: %v", remaining)
	}
	if w.recorder.Count(event.EntityDestroyed) != 1 {
		t.Fatalf("Expected 1 EntityDestroyed event, got %d", w.recorder.Count(event.EntityDestroyed))
	}
	data := w.recorder.Events[len(w.recorder.Events)-1].Data.(event.EntityDestroyedData)
	if data.Entity != b || data.Team != types.TeamEnemy || data.Kind != types.EntityUnit {
		t.Errorf("Unexpected destroyed data: %+v", data)
	}

	// 移除后的目标引用失效
	if isAliveEntity(w.em, b) {
		t.Error("Removed entity should not resolve as alive")
	}
}

func TestOutcomeSystem(t *testing.T) {
	w := newTestWorld(t)
	towers, err := entities.SpawnArenaTowers(w.em, w.balance)
	if err != nil {
		t.Fatalf("SpawnArenaTowers failed: %v", err)
	}
	outcome := NewOutcomeSystem(w.em, towers.PlayerKing, towers.EnemyKing)

	if r := outcome.Evaluate(); r != types.ResultNone {
		t.Fatalf("Expected none, got %v", r)
	}

	w.health(towers.EnemyKing).TakeDamage(4000)
	if r := outcome.Evaluate(); r != types.ResultVictory {
		t.Errorf("Expected victory, got %v", r)
	}

	// 双方主塔同时倒下时判负
	w.health(towers.PlayerKing).TakeDamage(4000)
	if r := outcome.Evaluate(); r != types.ResultDefeat {
		t.Errorf("Expected defeat to take precedence, got %v", r)
	}

	// 主塔被移出集合或从未创建都视为失败
	NewCleanupSystem(w.em, w.dispatcher).Update()
	if r := outcome.Evaluate(); r != types.ResultDefeat {
		t.Errorf("Expected defeat after the king was removed, got %v", r)
	}
	missing := NewOutcomeSystem(w.em, ecs.InvalidEntity, ecs.InvalidEntity)
	if r := missing.Evaluate(); r != types.ResultDefeat {
		t.Errorf("Expected defeat without a player king, got %v", r)
	}
}

func TestUnitDropsUnlocatableTarget(t *testing.T) {
	w := newTestWorld(t)
	melee := w.unit(t, types.TeamPlayer, types.UnitMelee, 200, 400)

	// 有生命值但没有位置的目标无法追击
	ghost := w.em.CreateEntity()
	ecs.AddComponent(w.em, ghost, components.NewHealthComponent(100))
	if !isAliveEntity(w.em, ghost) {
		t.Fatal("Ghost should resolve as alive")
	}

	w.combat(melee).Target = ghost
	w.behavior.handleUnitBehavior(melee, 0.1)

	if w.combat(melee).HasTarget() {
		t.Errorf("Unlocatable target should be cleared, still holding %d", w.combat(melee).Target)
	}
	if w.health(ghost).CurrentHealth != 100 {
		t.Error("Unlocatable target should not take damage")
	}
	if isAliveEntity(w.em, ecs.InvalidEntity) || isAliveEntity(w.em, ghost+100) {
		t.Error("Unknown IDs should never resolve as alive")
	}
}
