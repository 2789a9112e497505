// Package errors provides structured errors for the rpg-wilds simulation.
//
// The simulation core itself never fails on gameplay: rejected moves, invalid
// combat targets and empty event choices are reported through outputs, and
// missing content degrades to generic text. This package covers the
// infrastructure edges around it: configuration, content loading, dice
// rollers and save storage.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("save not found")
//	err := errors.InvalidArgumentf("invalid direction: (%d,%d)", dx, dy)
//
// Adding metadata:
//
//	err := errors.NotFound("enemy template not found").
//	    WithMeta("enemy_id", enemyID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load save")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("id", event.ID, vb)
//	errors.ValidateRange("dc", dc, 1, 30, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing ids and DataLoss for undecodable records
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate configs and inputs, return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Report gameplay rejections through outputs, not errors
package errors
