package ranking

import (
	"fmt"
	"strings"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

const (
	PolicyManual   = "manual"
	PolicyLeapfrog = "leapfrog"
)

// Policy decides how ranking points react to a recorded match.
// Apply returns false when points must stay unchanged.
type Policy interface {
	Name() string
	Apply(winner, loser player.Player, standings []player.Player) (Update, bool)
}

// ManualPolicy leaves points alone; admins reorder the ladder by hand.
type ManualPolicy struct{}

func (ManualPolicy) Name() string { return PolicyManual }

func (ManualPolicy) Apply(player.Player, player.Player, []player.Player) (Update, bool) {
	return Update{}, false
}

// LeapfrogPolicy applies ComputeLeapfrogUpdate.
type LeapfrogPolicy struct{}

func (LeapfrogPolicy) Name() string { return PolicyLeapfrog }

func (LeapfrogPolicy) Apply(winner, loser player.Player, standings []player.Player) (Update, bool) {
	return ComputeLeapfrogUpdate(winner, loser, standings), true
}

func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyManual:
		return ManualPolicy{}, nil
	case PolicyLeapfrog:
		return LeapfrogPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown ranking policy %q: valid values are %s, %s", name, PolicyManual, PolicyLeapfrog)
	}
}
