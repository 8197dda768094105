// Package linearcode implements binary linear block codes: encoding,
// syndrome computation, nearest-codeword decoding, minimum distance, and
// the classic named families (Hamming, repetition, single parity check).
//
// What:
//
//   - Code holds an (n, k) pair of generator G (k×n) and parity-check H
//     ((n−k)×n) matrices over GF(2), validated at construction:
//     rank(G) = k, rank(H) = n−k, and G·Hᵀ = 0.
//   - Encode maps a k-bit message m to the n-bit codeword m·G.
//   - Syndrome maps an n-bit word r to r·Hᵀ; zero iff r is a codeword.
//   - Decode corrects errors by nearest-codeword search, with a fast
//     systematic extraction path for zero-syndrome words.
//   - MinimumDistance is the least Hamming weight among nonzero codewords,
//     computed lazily and cached.
//
// Why:
//
//   - The coding-theory half of the Gates link: Adinkra graph structure
//     (package adinkra) is mapped onto exactly these objects.
//
// Complexity:
//
//   - Encode / Syndrome: O(n·k/64) word operations.
//   - Decode (clean systematic path): O(n·(n−k)/64 + k).
//   - Decode (nearest codeword) and MinimumDistance: O(2ᵏ · n·k/64) —
//     exhaustive enumeration, intended for small k. DecodeOptions caps the
//     exhaustive path (default k ≤ 16); larger codes need a syndrome-table
//     or algebraic decoder, which is out of scope for this library.
//
// Determinism:
//
//   - Nearest-codeword search walks messages in ascending index order
//     (message index bit i = vector position i) and keeps only strict
//     improvements, so ties always resolve to the lowest message index.
//
// Errors:
//
//   - ErrShapeMismatch, ErrRankDeficient, ErrNotOrthogonal: construction.
//   - ErrVectorLength: wrong-length input vector.
//   - ErrDegenerateCode: decode on an n = 0 or k = 0 code, or a generator
//     whose rank collapses to zero.
//   - ErrBadParameter: invalid named-family parameter.
//   - ErrSearchSpace: exhaustive decode refused for too-large k.
package linearcode
