// Package padic implements arithmetic in the field Q_p of p-adic
// numbers at finite precision.
//
// An element is a triple (u, v, N): a unit integer u, a valuation v,
// and an absolute precision N, representing the equivalence class of
// u*p^v modulo p^N. Every public operation returns its result in
// reduced form: either u = 0 and v = 0, or gcd(u, p) = 1 and
// 0 <= u < p^(N-v). The precision N belongs to the result element and
// is set at creation (DefaultPrec) or via SetPrec.
//
// A Ctx carries the prime and a dense cache of its powers; the power
// cache is immutable after construction and safe for concurrent
// readers, while SetPrintMode changes the context's print mode.
// Elements are not safe for concurrent mutation. An InvState carries
// per-workstream scratch for repeated Hensel inversions and must not
// be shared.
package padic
