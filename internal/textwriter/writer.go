// =============================================================================
// Work History Formatter - Text Writer Module
// =============================================================================
//
// This module assembles rendered blocks into the final report document.
//
// DOCUMENT STRUCTURE:
//
//   Work History 1
//   Company: Acme Inc
//   ...
//   Responsibilities: Built things
//                                        <-- one blank line between blocks
//   Work History 2
//   ...
//   Responsibilities: Ran things\n       <-- document ends with one newline
//
// A report with no blocks is an empty document. There is no header, footer
// or summary.
//
// =============================================================================

package textwriter

import (
	"bytes"

	"github.com/ginjaninja78/work-history-formatter/internal/types"
)

// GenerateOptions contains options for document generation.
type GenerateOptions struct {
	// Separator is written between consecutive blocks.
	// Default: "\n\n" (one blank line)
	Separator string

	// TrailingNewline terminates the last block with a newline.
	// Default: true
	TrailingNewline bool
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Separator:       "\n\n",
		TrailingNewline: true,
	}
}

// Generate creates the report document from blocks, in the given order.
// Block indexes are rendered as stored; numbering is the caller's job.
func Generate(blocks []types.Block) []byte {
	return GenerateWithOptions(blocks, DefaultGenerateOptions())
}

// GenerateWithOptions creates the report document with custom options.
func GenerateWithOptions(blocks []types.Block, options GenerateOptions) []byte {
	var buffer bytes.Buffer

	for i, block := range blocks {
		if i > 0 {
			buffer.WriteString(options.Separator)
		}
		buffer.WriteString(block.String())
	}

	if options.TrailingNewline && len(blocks) > 0 {
		buffer.WriteByte('\n')
	}

	return buffer.Bytes()
}
