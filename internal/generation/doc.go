// Package generation defines the boundary between the extraction core and
// the external text-generation service. The Generator interface keeps the
// core independent of any concrete LLM provider; implementations live under
// internal/platform and tests substitute a deterministic stub.
package generation
