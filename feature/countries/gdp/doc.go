// Package gdp estimates a country's GDP from its population and exchange rate.
//
// The estimate multiplies population, rate and a multiplier drawn uniformly
// from [1000, 2000] on every call. Two estimates over the same input differ;
// callers and tests must check ranges, never exact values.
package gdp
