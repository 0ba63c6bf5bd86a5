package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeLineAndColumn(t *testing.T) {
	contents := "class C {\n  static x = this.y;\n}\n"
	offset := 23 // points at "this"

	line, column, lineStart, lineEnd := computeLineAndColumn(contents, offset)
	require.Equal(t, 1, line)
	require.Equal(t, 13, column)
	require.Equal(t, "  static x = this.y;", contents[lineStart:lineEnd])
}

func TestMsgString(t *testing.T) {
	source := Source{PrettyPath: "entry.js", Contents: "let x = this;\n"}

	log := NewDeferLog()
	log.AddError(&source, Loc{Start: 8}, "Unexpected \"this\"")
	require.True(t, log.HasErrors())

	msgs := log.Done()
	require.Len(t, msgs, 1)
	require.Equal(t,
		"entry.js:1:8: error: Unexpected \"this\"\nlet x = this;\n        ^\n",
		msgs[0].String(StderrOptions{IncludeSource: true}, TerminalInfo{}))
}

func TestErrorAndWarningSummary(t *testing.T) {
	require.Equal(t, "1 error", errorAndWarningSummary(1, 0))
	require.Equal(t, "2 warnings", errorAndWarningSummary(0, 2))
	require.Equal(t, "1 warning and 3 errors", errorAndWarningSummary(3, 1))
}
