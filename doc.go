// Package imf parses Internet Message Format messages (RFC 5322, its
// predecessor RFC 2822, and the MIME header extensions of RFC 2045/2046)
// into a structured value model.
//
// Parsing is a two-layer process. A header-block tokenizer splits the raw
// input into an ordered sequence of fields without interpreting them; each
// field retains the exact source bytes of its value. Field view decoders
// then re-parse a field's raw bytes on demand, applying the grammar
// production appropriate to that field's kind and returning either a typed
// value, the raw bytes (if the structured parse failed), or a missing
// indicator if the field was never present.
//
// The package does not decode MIME transfer encodings or multipart bodies,
// does not resolve character sets, and does not enforce semantic
// cross-field rules; it accepts whatever the grammar accepts and leaves
// policy to the caller.
package imf
