package engine

import (
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/schemescope/internal/adapter"
	m "github.com/mouse-blink/schemescope/internal/model"
)

var schemeFixture = dedent.Dedent(`
	<?xml version="1.0" encoding="UTF-8"?>
	<plist version="1.0">
	<dict>
		<key>settings</key>
		<array>
			<dict>
				<key>name</key>
				<string>Comment</string>
				<key>scope</key>
				<string>comment</string>
			</dict>
			<dict>
				<key>name</key>
				<string>Line comment</string>
				<key>scope</key>
				<string>comment.line, string.quoted</string>
			</dict>
			<dict>
				<key>scope</key>
				<string>comment.line.double-slash.go</string>
			</dict>
			<dict>
				<key>scope</key>
				<string>comment.block</string>
			</dict>
			<dict>
				<key>scope</key>
				<string>source.go</string>
			</dict>
			<dict>
				<key>scope</key>
				<string> foo.bar , baz.qux </string>
			</dict>
		</array>
	</dict>
	</plist>
`)

func newSchemeDoc(t *testing.T) *adapter.TextDocument {
	t.Helper()

	return adapter.NewTextDocument("Fixture.tmTheme", schemeFixture)
}

// regionOf returns the region of the n-th occurrence (0-based) of text.
func regionOf(t *testing.T, doc adapter.Document, text string, n int) m.Region {
	t.Helper()

	offset := 0
	for i := 0; ; i++ {
		idx := strings.Index(doc.Text()[offset:], text)
		require.GreaterOrEqual(t, idx, 0, "occurrence %d of %q", n, text)

		if i == n {
			begin := offset + idx
			return m.NewRegion(begin, begin+len(text))
		}

		offset += idx + len(text)
	}
}
