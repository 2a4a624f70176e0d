// Package optics provides composable, pure accessors for immutable data.
//
// There are seven optic kinds. Iso converts losslessly, Lens focuses on a
// part that is always present, Prism on one case of a sum type, Optional on
// a part that may be absent, and Traversal on zero or more parts. Setter
// can only write and Fold can only read.
//
// Composition never panics. The typed functions ComposeIso, ComposeLens and
// so on accept any operands that can be viewed as the named kind, so the
// Go compiler rejects compositions the kinds do not support. Optic is the
// dynamic form: Compose looks up the resulting kind with Meet and returns
// ErrIncompatibleKinds for a Setter combined with a Fold.
//
// Instances for containers are explicit values: SliceCons, MapAt,
// SeqIndex, MapFilterIndex and friends are passed where they are needed.
// Optics never mutate their source; maps and slices are copied before a
// write.
package optics
