// Package errors provides the structured error type used across fabula-api.
//
// Every error carries a Code, a caller-facing Message, an optional Cause and
// free-form metadata. Codes map onto gRPC status codes at the transport edge.
//
// Creating and wrapping:
//
//	err := errors.NotFoundf("actor %s not found", actorID)
//	return errors.Wrap(err, "failed to load actor")
//
// Domain failures keep their typed cause so callers can still use errors.As:
//
//	return errors.WrapWithCode(&fabula.MissingAttributeError{...},
//	    errors.CodeFailedPrecondition, "actor cannot roll item")
//
// Configuration checks use the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
package errors
