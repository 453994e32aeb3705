package motion

import "testing"

func TestImpulseAdditiveStacks(t *testing.T) {
	i := NewFastImpulse(Additive)
	i.Trigger(8)
	i.Trigger(8)
	if got := i.Value(); got != 16 {
		t.Errorf("Value = %v, want 16", got)
	}
	if got := i.Multiplier(); got != 17 {
		t.Errorf("Multiplier = %v, want 17", got)
	}
}

func TestImpulseSetReplaces(t *testing.T) {
	i := NewSlowImpulse(Set)
	i.Trigger(8)
	i.Trigger(8)
	if got := i.Value(); got != 8 {
		t.Errorf("Value = %v, want 8", got)
	}
}

func TestImpulseDecaysMonotonically(t *testing.T) {
	for _, coeff := range []float64{FastDecayCoeff, SlowDecayCoeff} {
		for _, dt := range []float64{0.5, 1, 2.5} {
			i := NewImpulse(Additive, DecayBase, coeff)
			i.Trigger(8)
			prev := i.Value()
			for n := 0; n < 500; n++ {
				i.Advance(dt)
				v := i.Value()
				if v > prev {
					t.Fatalf("coeff=%v dt=%v: value increased %v -> %v", coeff, dt, prev, v)
				}
				if v < 0 {
					t.Fatalf("coeff=%v dt=%v: value %v below zero", coeff, dt, v)
				}
				if prev > 0 && v >= prev {
					t.Fatalf("coeff=%v dt=%v: value did not decrease at step %d", coeff, dt, n)
				}
				prev = v
			}
		}
	}
}

func TestImpulseHugeDeltaClampsToZero(t *testing.T) {
	i := NewFastImpulse(Additive)
	i.Trigger(4)
	i.Advance(1000)
	if got := i.Value(); got != 0 {
		t.Errorf("Value = %v, want 0", got)
	}
}

func TestImpulseNegativeTriggerClamps(t *testing.T) {
	i := NewFastImpulse(Set)
	i.Trigger(-3)
	if got := i.Value(); got != 0 {
		t.Errorf("Value = %v, want 0", got)
	}
}
