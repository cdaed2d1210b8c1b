// Package batch splits line-oriented text into request-sized chunks for
// submission to a size-limited text-generation API.
package batch
