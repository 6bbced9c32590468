package engine

import "github.com/verbatik/speechkit/native"

// Engine is a recognition engine that produces owned result handles and
// serves the native accessor contract over them.
// Implementations may be a no-op (stub) or backed by whisper.cpp (build tag: whisper_cpp).
type Engine interface {
	native.API

	// Recognize runs one-shot recognition over 16kHz PCM32F samples and
	// returns a result handle. Ownership of the handle passes to the caller,
	// who must release it exactly once (speech.FromHandle takes that over).
	Recognize(samples []float32) (native.Handle, error)

	Close() error
}
