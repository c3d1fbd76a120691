package gpiopoller

import "testing"

func TestPinNumbersCoverAllButtons(t *testing.T) {
	buttons := []Button{ButtonPlayPause, ButtonStop, ButtonLoop}
	seen := make(map[int]Button)
	for _, b := range buttons {
		n, ok := pinNumbers[b]
		if !ok {
			t.Errorf("button %d has no assigned GPIO pin", int(b))
			continue
		}
		if other, dup := seen[n]; dup {
			t.Errorf("pin %d assigned to both button %d and button %d", n, int(other), int(b))
		}
		seen[n] = b
	}
}
