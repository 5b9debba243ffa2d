// Package factor models the Factor/Factorization/BWFactorization values the
// seven boundary criteria in package criteria search for, and builds the
// admissible-factor index (AdmissibleFactors, FactorsByStart,
// FactorsByFinish) the translation criterion searches over.
//
// Complexity: AdmissibleFactors is O(n^2) worst case (n = len(w)) and
// returns O(n) factors; FactorsByStart/FactorsByFinish are O(n log n) on
// top of that for the sort.
package factor
