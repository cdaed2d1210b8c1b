// Package gemini implements the generation.Generator interface on top of
// Google's Gemini API.
package gemini
