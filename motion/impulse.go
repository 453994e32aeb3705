package motion

// TriggerPolicy selects how Trigger combines with the current value.
type TriggerPolicy int

const (
	// Additive stacks repeated triggers (value += amount).
	Additive TriggerPolicy = iota
	// Set replaces the current value (value = amount).
	Set
)

// Decay constants seen across the front-end.
const (
	DecayBase      = 0.99
	FastDecayCoeff = 0.01
	SlowDecayCoeff = 0.001
)

// Impulse is a scalar that jumps when triggered and relaxes exponentially
// back to zero. Callers use Multiplier() to speed up another rate.
type Impulse struct {
	value  float64
	base   float64
	coeff  float64
	policy TriggerPolicy
}

// NewImpulse creates an impulse decaying by max(0, base-coeff*dt) per advance.
func NewImpulse(policy TriggerPolicy, base, coeff float64) *Impulse {
	return &Impulse{base: base, coeff: coeff, policy: policy}
}

// NewFastImpulse decays with 0.99 - 0.01*dt.
func NewFastImpulse(policy TriggerPolicy) *Impulse {
	return NewImpulse(policy, DecayBase, FastDecayCoeff)
}

// NewSlowImpulse decays with 0.99 - 0.001*dt.
func NewSlowImpulse(policy TriggerPolicy) *Impulse {
	return NewImpulse(policy, DecayBase, SlowDecayCoeff)
}

// Trigger applies an impulse according to the configured policy.
func (i *Impulse) Trigger(amount float64) {
	switch i.policy {
	case Set:
		i.value = amount
	default:
		i.value += amount
	}
	if i.value < 0 {
		i.value = 0
	}
}

// Advance decays the value. The factor never goes below zero so the value
// can not flip sign.
func (i *Impulse) Advance(dt float64) {
	f := i.base - i.coeff*dt
	if f < 0 {
		f = 0
	}
	i.value *= f
}

// Value returns the current impulse.
func (i *Impulse) Value() float64 { return i.value }

// Multiplier returns 1 + Value().
func (i *Impulse) Multiplier() float64 { return 1 + i.value }

// Reset drops the impulse back to zero.
func (i *Impulse) Reset() { i.value = 0 }
