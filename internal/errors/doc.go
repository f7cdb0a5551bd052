// Package errors provides the structured error type used across rpg-casino.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form metadata. Codes map one-to-one onto gRPC status codes so handlers
// can return errors.ToGRPCError(err) without inspecting them.
//
// Creating errors:
//
//	err := errors.NotFound("encounter not found")
//	err := errors.FailedPreconditionf("die %d is banked", id)
//
// Game-rule rejections from the dice engine are FailedPrecondition errors
// with a "reason" metadata entry:
//
//	err := errors.FailedPrecondition("select a scoring combination first").
//	    WithMeta("reason", "nothing_held")
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load encounter")
//	}
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Repo == nil {
//	    vb.RequiredField("Repo")
//	}
//	return vb.Build()
//
// Layer guidelines:
//   - repositories return NotFound / AlreadyExists and wrap storage errors
//   - orchestrators validate input (InvalidArgument) and game state (FailedPrecondition)
//   - handlers convert with ToGRPCError
package errors
