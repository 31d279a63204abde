// Package analysis derives frequency-domain properties of open-loop
// transfer functions: gain and phase margins via scalar root finding on
// the frequency response, and root-locus traces of the closed-loop
// characteristic polynomial across a gain sweep.
package analysis
