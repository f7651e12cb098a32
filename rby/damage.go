package rby

import "github.com/go-logr/logr"

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

const (
	MIN_DAMAGE_ROLL = 217
	MAX_DAMAGE_ROLL = 255
)

// Damage calculates the damage the attacker does to the defender with this move,
// without a critical hit.
func (m Move) Damage(rng Source, attacker *BattleState, defender *BattleState) uint16 {
	return m.DamageWithCrit(rng, attacker, defender, false)
}

// DamageWithCrit calculates damage the way the RBY cartridges do.
//
// A critical hit doubles the attacker's level in the formula and reads
// attack and defense without stage boosts.
// TODO: Reflect and Light Screen halve the incoming damage; needs a field for screens on BattleState
func (m Move) DamageWithCrit(rng Source, attacker *BattleState, defender *BattleState, crit bool) uint16 {
	if m.Power == 0 {
		return 0
	}

	attackStat, defenseStat := STAT_SPECIAL, STAT_SPECIAL
	if m.Type.IsPhysical() {
		attackStat, defenseStat = STAT_ATTACK, STAT_DEFENSE
	}

	var attack, defense uint32
	if crit {
		attack = uint32(attacker.RawStat(attackStat))
		defense = uint32(defender.RawStat(defenseStat))
	} else {
		attack = uint32(attacker.Stat(attackStat))
		defense = uint32(defender.Stat(defenseStat))
	}

	if m.Effect.Kind == EFFECT_SELF_KO {
		defense /= 2
	}

	// Both values go through the same 8 bit register, so both are scaled
	// together even if only one of them overflows
	if attack > 255 || defense > 255 {
		attack = (attack / 4) & 0xff
		defense = (defense / 4) & 0xff
	}

	level := uint32(attacker.Pokemon().Level)
	if crit {
		level *= 2
	}

	power := uint32(m.Power)
	damage := power * max(attack, 1) * (2*level/5 + 2)
	damage /= max(defense, 1)
	damage = 2 + min(damage/50, 997)

	stab := attacker.Pokemon().HasType(m.Type)
	if stab {
		damage = damage * 3 / 2
	}

	damage = ApplyEffectiveness(damage, m.Type, defender.Pokemon().Types)

	r := uint32(rng.IntN(MIN_DAMAGE_ROLL, MAX_DAMAGE_ROLL+1))
	final := uint16(damage * r / 255)

	damageLogger().V(2).Info("final damage",
		"move", m.Name,
		"power", power,
		"attackerLevel", attacker.Pokemon().Level,
		"attackValue", attack,
		"attackStage", attacker.Stage(attackStat).Stage(),
		"defValue", defense,
		"defenseStage", defender.Stage(defenseStat).Stage(),
		"attackType", m.Type.String(),
		"STAB", stab,
		"crit", crit,
		"roll", r,
		"damage", final)

	return final
}

// Outcome is everything one use of a move produced. Nothing is applied until Apply is called.
type Outcome struct {
	Hit      bool
	Critical bool
	Damage   uint16

	Recoil    uint16
	HasRecoil bool
	// Explosion and Self-Destruct knock out the user, hit or miss
	SelfKO bool
}

// Resolve runs a full move use: hit check, critical roll, damage, then recoil.
// Randomness is drawn in that order, and nothing is drawn after a miss.
func (m Move) Resolve(rng Source, attacker *BattleState, defender *BattleState) Outcome {
	outcome := Outcome{SelfKO: m.Effect.Kind == EFFECT_SELF_KO}

	if !m.Hits(rng, attacker.Stage(STAT_ACCURACY), defender.Stage(STAT_EVASION)) {
		battleLogger().V(1).Info("move missed", "move", m.Name, "attacker", attacker.Pokemon().Name)
		return outcome
	}

	outcome.Hit = true
	if !m.IsDamaging() {
		return outcome
	}

	outcome.Critical = m.IsCritical(rng, attacker)
	outcome.Damage = m.DamageWithCrit(rng, attacker, defender, outcome.Critical)
	outcome.Recoil, outcome.HasRecoil = m.Recoil(outcome.Damage)

	return outcome
}

// Apply writes the outcome back onto both combatants.
func (o Outcome) Apply(attacker *BattleState, defender *BattleState) {
	if o.Hit {
		defender.ApplyDamage(o.Damage)
		if o.HasRecoil {
			attacker.ApplyDamage(o.Recoil)
		}
	}

	if o.SelfKO {
		attacker.ApplyDamage(attacker.HP())
	}
}
