package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/symflower/smtfmt"
	"github.com/symflower/smtfmt/encode"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	var opts []encode.EncodeOption
	if params.Options.TabSize > 0 {
		opts = append(opts, encode.EncodeIndent(int(params.Options.TabSize)))
	}

	formatted, err := smtfmt.FormatString(doc.content, opts...)
	if err != nil {
		// An unparsable document gets diagnostics, not edits.
		return nil, nil
	}

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// One edit replacing the whole document.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
