package filter

import (
	"fmt"
	"math"
)

// Coefficients holds the transfer function of a single second-order section
// with a0 normalized to 1:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// DCGain returns the gain of the section at zero frequency.
func (c Coefficients) DCGain() float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// angular validates freq against the Nyquist limit and returns the
// normalized angular frequency.
func angular(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("filter: sample rate must be positive, got %v", sampleRate)
	}
	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, fmt.Errorf("filter: frequency %v Hz outside (0, %v)", freq, nyquist)
	}
	return 2 * math.Pi * freq / sampleRate, nil
}

func checkQ(q float64) error {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("filter: quality factor must be positive, got %v", q)
	}
	return nil
}

func normalize(b0, b1, b2, a0, a1, a2 float64) (Coefficients, error) {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}, fmt.Errorf("filter: degenerate design (a0 = %v)", a0)
	}
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, nil
}

// LowPass designs a lowpass biquad at freq (Hz) with quality factor q.
func LowPass(freq, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2
	return normalize(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

// HighPass designs a highpass biquad at freq (Hz) with quality factor q.
func HighPass(freq, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b1 := -(1 + cw)
	b0 := -b1 / 2
	return normalize(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

// BandPass designs a constant-skirt-gain bandpass biquad.
func BandPass(freq, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	return normalize(sw/2, 0, -sw/2, 1+alpha, -2*cw, 1-alpha)
}

// Notch designs a notch biquad centered at freq (Hz).
func Notch(freq, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize(1, -2*cw, 1, 1+alpha, -2*cw, 1-alpha)
}

// AllPass designs an allpass biquad centered at freq (Hz).
func AllPass(freq, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize(1-alpha, -2*cw, 1+alpha, 1+alpha, -2*cw, 1-alpha)
}

// Peak designs a peaking-EQ biquad with gain in dB.
func Peak(freq, gainDB, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a := math.Pow(10, gainDB/40)

	return normalize(1+alpha*a, -2*cw, 1-alpha*a, 1+alpha/a, -2*cw, 1-alpha/a)
}

// LowShelf designs a low-shelf biquad with gain in dB.
func LowShelf(freq, gainDB, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return normalize(b0, b1, b2, a0, a1, a2)
}

// HighShelf designs a high-shelf biquad with gain in dB.
func HighShelf(freq, gainDB, q, sampleRate float64) (Coefficients, error) {
	w0, err := angular(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	if err := checkQ(q); err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return normalize(b0, b1, b2, a0, a1, a2)
}
