package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame(ActionLaunch, ActionFire)

	if !f.Has(ActionLaunch) || !f.Has(ActionFire) {
		t.Fatal("constructor actions should be set")
	}
	if f.Has(ActionMute) {
		t.Error("Mute should not be set")
	}

	f.Unset(ActionFire)
	if f.Has(ActionFire) {
		t.Error("Fire should be cleared by Unset")
	}

	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone is never reported")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFrameHorizontal(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    int
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewInputFrame(tc.actions...).Horizontal(); got != tc.want {
				t.Errorf("Horizontal() = %d, expected %d", got, tc.want)
			}
		})
	}
}
