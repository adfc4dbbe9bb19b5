// Package congestion provides ready-made congestion functions and a declarative
// Spec so networks can be described in configuration files.
//
// Every constructor returns a network.CongestionFunc mapping a non-negative
// vehicle count to a travel time:
//
//   - Constant(t):                    t
//   - Linear(a, b):                   a + b·n
//   - Polynomial(c0, c1, ..., ck):    c0 + c1·n + ... + ck·nᵏ
//   - BPR(t0, c, α, β):               t0·(1 + α·(n/c)^β)   (Bureau of Public Roads)
//
// Constructors validate their parameters and return ErrBadSpec rather than a
// function that would later yield negative or NaN times.
package congestion
