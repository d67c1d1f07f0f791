package server

import (
	"testing"
	"time"

	"github.com/lab1702/cellspread/game"
)

const testDefsJSON = `{
  "warheads": {
    "blast": {
      "damage": 1000,
      "damageTypes": ["Explosion"],
      "spread": "1c0",
      "percentAtMax": 50
    },
    "demolition": {
      "damage": 1000,
      "spread": "0c512",
      "percentAtMax": 50,
      "maxAffect": 2,
      "validTargets": ["Structure"]
    },
    "hostile": {
      "damage": 100,
      "spread": "1c0",
      "percentAtMax": 100,
      "validRelationships": ["enemy"]
    }
  }
}`

func testDefs(t *testing.T) Definitions {
	t.Helper()
	defs, err := ParseDefinitions([]byte(testDefsJSON))
	if err != nil {
		t.Fatalf("ParseDefinitions: %v", err)
	}
	return defs
}

func posPtr(x, y int) *game.WPos {
	return &game.WPos{X: x, Y: y}
}

// testScenario places two actors half a cell apart and a third far away,
// then detonates "blast" on the first one at tick 2.
func testScenario() *Scenario {
	return &Scenario{
		Name: "unit",
		Map:  MapSize{Cols: 16, Rows: 16},
		Actors: []ActorDef{
			{Name: "a", Team: 1, Pos: posPtr(4096, 4096), HP: 5000, Shapes: []ShapeDef{{Type: ShapeCircle}}},
			{Name: "b", Team: 2, Pos: posPtr(4608, 4096), HP: 5000, Shapes: []ShapeDef{{Type: ShapeCircle}}},
			{Name: "far", Team: 2, Pos: posPtr(8192, 8192), HP: 5000, Shapes: []ShapeDef{{Type: ShapeCircle}}},
		},
		Impacts: []ImpactDef{
			{Tick: 2, Warhead: "blast", Pos: posPtr(4096, 4096)},
		},
	}
}

func testConfig() Config {
	cfg := NewConfig()
	cfg.TickInterval = 5 * time.Millisecond
	return cfg
}
