// Package signal generates synthetic sky cutouts: constant fields, Gaussian
// sources, rings and white noise. All generators are deterministic for a
// given configuration and seed.
package signal
