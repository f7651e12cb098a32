package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/nathanieltooley/genwun/rby"
	"github.com/rs/zerolog"
)

const hpBarWidth = 20

var (
	hpHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hpMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hpLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
)

type side struct {
	state *rby.BattleState
	move  rby.Move
}

// duel pits two Pokemon against each other until one faints or the turn limit runs out.
// Each side always uses the same move.
type duel struct {
	ID       uuid.UUID
	sides    [2]side
	maxTurns int
	out      io.Writer
	logger   zerolog.Logger
}

type duelResult struct {
	Turns int
	// Index of the side that is still standing, -1 for a draw or timeout
	Winner int
}

func newDuel(attacker side, defender side, maxTurns int, out io.Writer, logger zerolog.Logger) *duel {
	id := uuid.New()

	return &duel{
		ID:       id,
		sides:    [2]side{attacker, defender},
		maxTurns: maxTurns,
		out:      out,
		logger:   logger.With().Str("battle_id", id.String()).Logger(),
	}
}

// turnOrder returns side indices fastest first. Speed ties are a coin flip.
func (d *duel) turnOrder(rng rby.Source) [2]int {
	first := d.sides[0].state.Stat(rby.STAT_SPEED)
	second := d.sides[1].state.Stat(rby.STAT_SPEED)

	if second > first || (second == first && rng.IntN(0, 2) == 1) {
		return [2]int{1, 0}
	}

	return [2]int{0, 1}
}

func (d *duel) Run(rng rby.Source) duelResult {
	d.printStatus()

	turn := 0
	for d.bothAlive() && turn < d.maxTurns {
		turn++
		d.logger.Debug().Int("turn", turn).Msg("turn start")

		for _, attackerIndex := range d.turnOrder(rng) {
			attacker := d.sides[attackerIndex]
			defender := d.sides[1-attackerIndex]

			d.attack(rng, attacker, defender)

			if !d.bothAlive() {
				break
			}
		}

		d.printStatus()
	}

	result := duelResult{Turns: turn, Winner: -1}
	for i, s := range d.sides {
		if s.state.IsAlive() && !d.sides[1-i].state.IsAlive() {
			result.Winner = i
		}
	}

	d.logger.Info().Int("turns", result.Turns).Int("winner", result.Winner).Msg("duel over")
	return result
}

func (d *duel) attack(rng rby.Source, attacker side, defender side) {
	attackerName := attacker.state.Pokemon().Name
	defenderName := defender.state.Pokemon().Name

	fmt.Fprintf(d.out, "%s used %s!\n", nameStyle.Render(attackerName), attacker.move.Name)

	outcome := attacker.move.Resolve(rng, attacker.state, defender.state)
	outcome.Apply(attacker.state, defender.state)

	d.logger.Debug().
		Str("attacker", attackerName).
		Str("defender", defenderName).
		Str("move", attacker.move.Name).
		Bool("hit", outcome.Hit).
		Bool("crit", outcome.Critical).
		Uint16("damage", outcome.Damage).
		Uint16("recoil", outcome.Recoil).
		Msg("move resolved")

	if !outcome.Hit {
		fmt.Fprintf(d.out, "%s's attack missed!\n", attackerName)
	} else if attacker.move.IsDamaging() {
		if outcome.Critical {
			fmt.Fprintln(d.out, "Critical hit!")
		}

		effectiveness := rby.ApplyEffectiveness(100, attacker.move.Type, defender.state.Pokemon().Types)
		switch {
		case effectiveness == 0:
			fmt.Fprintf(d.out, "It doesn't affect %s...\n", defenderName)
		case effectiveness > 100:
			fmt.Fprintln(d.out, "It's super effective!")
		case effectiveness < 100:
			fmt.Fprintln(d.out, "It's not very effective...")
		}

		fmt.Fprintf(d.out, "%s took %d damage\n", defenderName, outcome.Damage)

		if outcome.HasRecoil {
			fmt.Fprintf(d.out, "%s is hit with recoil! (%d)\n", attackerName, outcome.Recoil)
		}
	}

	if !defender.state.IsAlive() {
		fmt.Fprintf(d.out, "%s fainted!\n", defenderName)
	}
	if !attacker.state.IsAlive() {
		fmt.Fprintf(d.out, "%s fainted!\n", attackerName)
	}
}

func (d *duel) bothAlive() bool {
	return d.sides[0].state.IsAlive() && d.sides[1].state.IsAlive()
}

func (d *duel) printStatus() {
	for _, s := range d.sides {
		fmt.Fprintf(d.out, "%-10s %s %d/%d\n", s.state.Pokemon().Name, hpBar(s.state.HP(), s.state.MaxHP()), s.state.HP(), s.state.MaxHP())
	}
}

func hpBar(hp uint16, maxHp uint16) string {
	filled := 0
	if maxHp > 0 {
		filled = int(hp) * hpBarWidth / int(maxHp)
	}
	// a living pokemon always shows at least one block
	if hp > 0 && filled == 0 {
		filled = 1
	}

	style := hpHighStyle
	switch {
	case filled*4 <= hpBarWidth:
		style = hpLowStyle
	case filled*2 <= hpBarWidth:
		style = hpMidStyle
	}

	return style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", hpBarWidth-filled)
}
