// Package data embeds the Gen I species and move tables used by the simulator and tests.
package data

import "embed"

//go:embed gen1-data.csv moves.json
var Files embed.FS
