package progression

import (
	"context"
	"time"

	"github.com/francislhj094/pocket-worlds/internal/gamedata"
)

const energyRefillMs = gamedata.EnergyRefillMinutes * 60 * 1000

// reconcileEnergy credits whole refill units accrued since the last
// watermark. The watermark advances only when at least one unit was
// credited, so partial progress toward the next unit survives across
// ticks. Returns true when the profile changed.
func reconcileEnergy(p *Profile, now time.Time) bool {
	if p.Energy >= p.MaxEnergy {
		return false
	}

	elapsed := now.UnixMilli() - p.LastEnergyUpdate
	toAdd := int(elapsed / energyRefillMs)
	if toAdd <= 0 {
		return false
	}

	if p.Energy+toAdd >= p.MaxEnergy {
		// Time spent at full energy does not bank toward future refills.
		p.Energy = p.MaxEnergy
		p.LastEnergyUpdate = now.UnixMilli()
		return true
	}

	// Consume only whole refill units; partial progress toward the next
	// unit stays on the clock.
	p.Energy += toAdd
	p.LastEnergyUpdate += int64(toAdd) * energyRefillMs
	return true
}

// ReconcileEnergy applies elapsed-time refills to the live profile.
// Runs at load and on the periodic tick.
func (g *GameImpl) ReconcileEnergy(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if reconcileEnergy(&g.profile, g.now()) {
		g.saveProfile(ctx)
	}
}
