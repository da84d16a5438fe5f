package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputValidation(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	cases := map[string]struct {
		in    interface{ Validate() error }
		valid bool
	}{
		"cargo ok":             {CargoInput{Name: "Crate", Type: CargoFood, Status: CargoPending}, true},
		"cargo blank name":     {CargoInput{Name: "  ", Type: CargoFood, Status: CargoPending}, false},
		"cargo unknown type":   {CargoInput{Name: "Crate", Type: "fuel", Status: CargoPending}, false},
		"cargo negative":       {CargoInput{Name: "Crate", Type: CargoFood, Status: CargoPending, Weight: -1}, false},
		"astronaut ok":         {AstronautInput{Name: "Ada", Status: AstronautTraining}, true},
		"astronaut status":     {AstronautInput{Name: "Ada", Status: "retired"}, false},
		"module ok":            {ModuleInput{Name: "Unity", Status: ModuleActive, Capacity: 10}, true},
		"module capacity":      {ModuleInput{Name: "Unity", Status: ModuleActive, Capacity: -10}, false},
		"mission ok":           {MissionInput{Name: "Relay", Status: MissionPlanned, StartDate: start}, true},
		"mission end reversed": {MissionInput{Name: "Relay", Status: MissionPlanned, StartDate: start, EndDate: &before}, false},
		"empty cargo patch":    {CargoPatch{}, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestCargoPatchApplyTouchesOnlySetFields(t *testing.T) {
	c := Cargo{ID: "cargo-001", Name: "Water Supply", Weight: 500, Status: CargoLoaded}
	status := CargoUnloaded
	got := CargoPatch{Status: &status}.Apply(c)

	assert.Equal(t, CargoUnloaded, got.Status)
	assert.Equal(t, "Water Supply", got.Name)
	assert.Equal(t, 500.0, got.Weight)
}

func TestMissionCloneIsDeep(t *testing.T) {
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	m := Mission{ID: "mission-001", EndDate: &end, CargoIDs: []string{"cargo-001"}}
	c := m.Clone()
	c.CargoIDs[0] = "changed"
	*c.EndDate = end.AddDate(1, 0, 0)

	assert.Equal(t, "cargo-001", m.CargoIDs[0])
	assert.Equal(t, end, *m.EndDate)
	assert.Equal(t, []string{}, c.ModuleIDs)
}

func TestCargoJSONUsesCamelCase(t *testing.T) {
	data, err := json.Marshal(Cargo{ID: "cargo-009", ModuleID: "module-001"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"moduleId":"module-001"`)
	assert.NotContains(t, string(data), "assignedTo")
}
