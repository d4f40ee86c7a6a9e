package engine

import "testing"

func TestEventWithArgInvoke(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })

	e.Invoke(2)

	if sum != 22 {
		t.Errorf("Expected 22, got %d", sum)
	}
}

func TestEventWithArgListeners(t *testing.T) {
	var e EventWithArg[string]
	calls := 0
	e.AddListener(func(string) { calls++ })
	e.AddListener(nil)

	if e.GetListenerCount() != 1 {
		t.Errorf("nil listener should be ignored, got %d listeners", e.GetListenerCount())
	}

	e.RemoveAllListeners()
	e.Invoke("released")
	if calls != 0 {
		t.Error("Listeners should be cleared")
	}
}
