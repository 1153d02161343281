// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// kan is the proof kernel for a dependently-typed calculus with cubical
// structure: a lazy evaluator over de Bruijn term syntax, the structural
// Kan operations (composition, coercion, homogeneous composition),
// normalization by evaluation, and a bidirectional type checker.
//
//
// Supported Features:
//
//   * Dependent function types with strict-maximum universe stratification
//   * Path types between terms, with path abstraction over interval variables
//   * Smooth path types carrying a syntactic differentiability order
//   * Generalized composition, coercion and homogeneous composition over
//     partial boundary data (face constraints)
//   * Call-by-need evaluation through persistent, structurally-shared
//     environments
//   * Definitional equality by quote-and-compare normalization
//   * Fuel-bounded recursion: pathological inputs surface as errors, never
//     as stack overflows
//
// Unsupported Kan cases (type families which are neither function, path
// nor constant families) reduce to first-class pending neutral values
// rather than errors, leaving room for later extension.
//
//
// Links:
//
// Cubical Type Theory: a constructive interpretation of the univalence axiom (Cohen, Coquand, Huber, Mörtberg): https://arxiv.org/abs/1611.02108
//
// Normalization by Evaluation (Wikipedia): https://en.wikipedia.org/wiki/Normalisation_by_evaluation
//
// De Bruijn index (Wikipedia): https://en.wikipedia.org/wiki/De_Bruijn_index
package kan
