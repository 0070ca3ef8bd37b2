// Package treegen produces synthetic trip-planning inputs: parent-link
// arrays for a few tree shapes and attractiveness profiles to go with them.
//
// The package follows a "shape + profile + options" composition:
//
//   - Shapes (parent links, C[root]==root):
//     – Straight(): a path 0—1—…—(n-1), rooted at 0.
//     – Star():     centre 0 with n-1 leaves.
//     – Random():   random recursive tree; C[i] uniform in [0, i). Needs an RNG.
//   - Profiles (attractiveness per city):
//     – Uniform(v):               every city v.
//     – Elevated(base, high, i):  every city base, city i high.
//     – Sunken(base, low, i):     every city base, city i low.
//     – RandomRange(lo, hi):      uniform in [lo, hi]. Needs an RNG.
//   - Options:
//     – WithSeed(seed) / WithRand(r): deterministic RNG for random parts.
//
// Guarantees:
//
//   - Deterministic: same n, shape, profile and seed ⇒ identical Tree.
//   - Every generated Tree is accepted by citymap.Build.
//   - Invalid parameters surface as sentinel errors; option constructors
//     panic on nonsense values (nil RNG).
package treegen
