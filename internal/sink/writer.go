package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// WriterSink prints messages as plain text
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Deliver writes the label, the roll mode and each content line
func (s *WriterSink) Deliver(_ context.Context, msg *Message) error {
	if msg == nil || msg.Payload == nil {
		return errors.InvalidArgument("message payload is required")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", msg.Payload.Label, msg.RollMode)
	for _, line := range msg.Payload.Lines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(s.w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write message")
	}
	return nil
}
