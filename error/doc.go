// Package error implements the contract.Error capability and the machinery
// around it.
//
// Key pieces:
//   - Error: a concrete, general-purpose error (description, optional detail,
//     code, cloned context, optional cause) that also works with errors.Is/As
//   - Base: embeddable defaults (no detail, no cause) for custom error types
//   - Is / DowncastRef / DowncastMut: checked recovery of a concrete type from
//     a contract.Error handle, driven by typeid
//   - Converter / Identity / Registry: re-typing errors as they cross layers,
//     reflexive for every type
//   - Walk / Chain / Root / Validate: bounded cause-chain traversal with cycle
//     detection
//   - Field / Report: zap and json/yaml views of a chain
//
// Ensure adapts plain Go errors so the same tools apply to them.
package error
