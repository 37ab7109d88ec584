/*
Package ringsafety assesses whether an integer-coefficient polynomial is a safe
choice as the defining polynomial of a ring Z_q[x]/(f(x)) used in lattice-based
cryptography (Ring-LWE and Module-LWE style schemes).

The analysis combines a structural coefficient-divisibility check, an
irreducibility test over the rationals and the factorization of f modulo q into
a discrete risk level and an accept/reject recommendation. Small-degree factors
modulo q enable subfield attacks that reduce a hard lattice problem to an
easier one in a smaller ring; the classifier encodes a conservative, documented
ordering over these attack classes. It is a screening heuristic, not a
security reduction.

The entry point is analysis.Analyzer. The algebraic oracles it consumes are
implemented in the algebra package on top of exact prime-field polynomial
arithmetic (zq) and integer factorization (factorization).
*/
package ringsafety
