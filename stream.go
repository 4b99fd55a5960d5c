package imf

import "io"

// MoreInputFunc supplies the next chunk of a streaming message source. It
// blocks until more bytes are available and returns io.EOF once the source
// is exhausted. The parser never owns the underlying I/O (§5) — it only
// ever asks for the next chunk and retries.
type MoreInputFunc func() ([]byte, error)

// ParseMessageStreaming parses a message whose bytes arrive through more
// one chunk at a time, for callers that cannot hand ParseMessage a single
// complete buffer up front. Each call appends the next chunk and retries
// the header tokenizer from scratch; once the header-terminating blank
// line is found, more is drained to io.EOF to capture the body, matching
// ParseMessage's all-or-nothing body semantics.
//
// A malformed header surfaces its error as soon as the bytes received show
// it, without waiting for additional input, since no amount of it can
// repair a bad field-name/colon structure. A field-name, or the CR of a
// CRLF, cut off by the end of the bytes received so far is not malformed:
// the next chunk may complete it. Exhausting more before the header
// terminates fails with ErrEndOfInput — the streaming counterpart of a truncated buffer (§6.3).
func ParseMessageStreaming(more MoreInputFunc) (*Message, error) {
	var buf []byte
	for {
		fields, bodyStart, terminated, err := tokenizeHeader(newScanner(buf))
		if err != nil {
			pe, ok := err.(*ParseError)
			cut := ok && (pe.Offset == len(buf) ||
				(pe.Offset == len(buf)-1 && buf[pe.Offset] == '\r'))
			if !cut {
				return nil, err
			}
		}
		if terminated {
			body, err := drain(buf[bodyStart:], more)
			if err != nil {
				return nil, err
			}
			return &Message{Fields: fields, Body: body}, nil
		}

		chunk, err := more()
		if err != nil {
			if err == io.EOF {
				return nil, newParseError(len(buf), ErrEndOfInput,
					"header block never reached its terminating blank line")
			}
			return nil, err
		}
		buf = append(buf, chunk...)
	}
}

// drain appends every remaining chunk from more onto body, stopping at
// io.EOF. A body has no terminator of its own to look for; "more bytes
// arrived" and "the message is still being received" are the same fact.
func drain(body []byte, more MoreInputFunc) ([]byte, error) {
	out := append([]byte(nil), body...)
	for {
		chunk, err := more()
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return nil, err
		}
		out = append(out, chunk...)
	}
}
