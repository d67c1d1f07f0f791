package server

import (
	"github.com/lab1702/cellspread/game"
	"github.com/lab1702/cellspread/logger"
	"github.com/sirupsen/logrus"
)

// Debug flags for various subsystems
var (
	DebugImpacts = false // Set to true to log every resolved hit
)

// logImpactHit logs a single resolved hit when debugging is enabled
func logImpactHit(warhead string, tick int, h game.Hit) {
	if DebugImpacts {
		logger.Component("impact").WithFields(logrus.Fields{
			"warhead":  warhead,
			"tick":     tick,
			"victim":   h.Victim,
			"distance": h.Distance.Length,
			"damage":   h.Damage.Value,
			"cells":    len(h.Cells),
		}).Debug("hit resolved")
	}
}
