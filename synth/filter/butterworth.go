package filter

import (
	"fmt"
	"math"
)

// ButterworthLP designs a lowpass Butterworth cascade of the given order.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) ([]Coefficients, error) {
	return butterworth(freq, order, sampleRate, LowPass, firstOrderLP)
}

// ButterworthHP designs a highpass Butterworth cascade of the given order.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) ([]Coefficients, error) {
	return butterworth(freq, order, sampleRate, HighPass, firstOrderHP)
}

func butterworth(
	freq float64, order int, sampleRate float64,
	second func(freq, q, rate float64) (Coefficients, error),
	first func(freq, rate float64) (Coefficients, error),
) ([]Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("filter: order must be positive, got %d", order)
	}
	sections := make([]Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		c, err := second(freq, butterworthQ(order, i), sampleRate)
		if err != nil {
			return nil, err
		}
		sections = append(sections, c)
	}
	if order%2 != 0 {
		c, err := first(freq, sampleRate)
		if err != nil {
			return nil, err
		}
		sections = append(sections, c)
	}
	return sections, nil
}

// butterworthQ returns the quality factor of the index-th second-order
// section of an order-n Butterworth filter.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	return 1 / (2 * math.Sin(theta))
}

func firstOrderLP(freq, sampleRate float64) (Coefficients, error) {
	if _, err := angular(freq, sampleRate); err != nil {
		return Coefficients{}, err
	}
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}, nil
}

func firstOrderHP(freq, sampleRate float64) (Coefficients, error) {
	if _, err := angular(freq, sampleRate); err != nil {
		return Coefficients{}, err
	}
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}, nil
}
