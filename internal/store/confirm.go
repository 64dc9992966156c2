package store

import "errors"

// ErrValidation marks create/update rejections. Callers test for it with
// errors.Is and report without mutating anything.
var ErrValidation = errors.New("validation failed")

// ConfirmFunc decides whether a delete proceeds. The policy (prompt the
// operator, always allow, always refuse) lives with the caller; the store
// only invokes it.
type ConfirmFunc func(kind, id string) bool

// AlwaysConfirm approves every deletion. The dashboard currently supplies
// this for all delete actions.
func AlwaysConfirm(kind, id string) bool { return true }
