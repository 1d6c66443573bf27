// poly.go - Ring element representation and operations.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

// Polynomial is an element of R_q = Z_q[X]/(X^paramN+1), stored as
// paramN coefficients, each a canonical representative in [0, paramQ).
// A zero-value Polynomial is the zero ring element.
type Polynomial struct {
	coeffs [paramN]uint16
}

// reset sets p to the zero polynomial.
func (p *Polynomial) reset() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

// zeroize overwrites p's coefficients, for use when p holds secret
// material (a private key's noise polynomial, an intermediate shared
// value) that must not linger after an operation returns.
func (p *Polynomial) zeroize() {
	p.reset()
}

// add sets p = a + b, coefficient-wise mod paramQ.
func (p *Polynomial) add(a, b *Polynomial) {
	for i := range p.coeffs {
		p.coeffs[i] = addMod(a.coeffs[i], b.coeffs[i])
	}
}

// pmul sets p = a * b, a pointwise product of two polynomials already
// in the NTT (evaluation) domain. Pointwise product in the evaluation
// domain corresponds to ring multiplication in the coefficient domain.
func (p *Polynomial) pmul(a, b *Polynomial) {
	for i := range p.coeffs {
		p.coeffs[i] = mulMod(a.coeffs[i], b.coeffs[i])
	}
}

// pmuladd sets p = p + a*b, where a and b are in the NTT domain. p may
// alias a or b; the multiply is computed into a temporary before being
// added so aliasing is safe.
func (p *Polynomial) pmuladd(a, b *Polynomial) {
	for i := range p.coeffs {
		t := mulMod(a.coeffs[i], b.coeffs[i])
		p.coeffs[i] = addMod(p.coeffs[i], t)
	}
}

// scale sets p = c*a for a small public scalar c, reducing mod paramQ.
func (p *Polynomial) scale(a *Polynomial, c uint32) {
	for i := range p.coeffs {
		p.coeffs[i] = smul(a.coeffs[i], c)
	}
}

// ntt transforms p from coefficient representation into the evaluation
// domain in place.
func (p *Polynomial) ntt() {
	forwardNTT(&p.coeffs)
}

// invNtt transforms p from the evaluation domain back into coefficient
// representation in place.
func (p *Polynomial) invNtt() {
	inverseNTT(&p.coeffs)
}

// copyFrom sets p equal to a.
func (p *Polynomial) copyFrom(a *Polynomial) {
	p.coeffs = a.coeffs
}
