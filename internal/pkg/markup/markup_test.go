package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFormat(t *testing.T) {
	t.Run("bold wraps the selection", func(t *testing.T) {
		text, cursor, err := ApplyFormat("Hello world", 6, 11, FormatBold)
		require.NoError(t, err)
		assert.Equal(t, "Hello **world**", text)
		assert.Equal(t, 15, cursor)
	})

	t.Run("underline wraps the selection", func(t *testing.T) {
		text, cursor, err := ApplyFormat("abc", 0, 3, FormatUnderline)
		require.NoError(t, err)
		assert.Equal(t, "<u>abc</u>", text)
		assert.Equal(t, 10, cursor)
	})

	t.Run("subtitle puts the selection on its own line", func(t *testing.T) {
		text, cursor, err := ApplyFormat("Title", 0, 5, FormatSubtitle)
		require.NoError(t, err)
		assert.Equal(t, "\n### Title\n", text)
		assert.Equal(t, 11, cursor)
	})

	t.Run("empty selection inserts an empty marker pair", func(t *testing.T) {
		text, cursor, err := ApplyFormat("abcd", 2, 2, FormatBold)
		require.NoError(t, err)
		assert.Equal(t, "ab****cd", text)
		assert.Equal(t, 6, cursor)
	})

	t.Run("offsets are rune based", func(t *testing.T) {
		text, cursor, err := ApplyFormat("éléments clés", 9, 13, FormatBold)
		require.NoError(t, err)
		assert.Equal(t, "éléments **clés**", text)
		assert.Equal(t, 17, cursor)
	})

	t.Run("out of range selection is rejected", func(t *testing.T) {
		_, _, err := ApplyFormat("abc", -1, 2, FormatBold)
		assert.Error(t, err)

		_, _, err = ApplyFormat("abc", 0, 4, FormatBold)
		assert.Error(t, err)

		_, _, err = ApplyFormat("abc", 2, 1, FormatBold)
		assert.Error(t, err)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, _, err := ApplyFormat("abc", 0, 1, FormatKind("italic"))
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Run("plain line becomes one paragraph", func(t *testing.T) {
		blocks := Parse("Bonjour à tous")
		require.Len(t, blocks, 1)
		assert.Equal(t, NodeParagraph, blocks[0].Type)
		require.Len(t, blocks[0].Children, 1)
		assert.Equal(t, NodeText, blocks[0].Children[0].Type)
		assert.Equal(t, "Bonjour à tous", blocks[0].Children[0].Text)
	})

	t.Run("subtitle prefix becomes a heading", func(t *testing.T) {
		blocks := Parse("### Inscriptions\nDétails ici")
		require.Len(t, blocks, 2)
		assert.Equal(t, NodeHeading, blocks[0].Type)
		assert.Equal(t, "Inscriptions", blocks[0].Children[0].Text)
		assert.Equal(t, NodeParagraph, blocks[1].Type)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		blocks := Parse("un\n\n   \ndeux")
		require.Len(t, blocks, 2)
	})

	t.Run("bold span splits the line", func(t *testing.T) {
		blocks := Parse("a **b** c")
		require.Len(t, blocks, 1)
		children := blocks[0].Children
		require.Len(t, children, 3)
		assert.Equal(t, "a ", children[0].Text)
		assert.Equal(t, NodeBold, children[1].Type)
		assert.Equal(t, "b", children[1].Children[0].Text)
		assert.Equal(t, " c", children[2].Text)
	})

	t.Run("underline span is recognized", func(t *testing.T) {
		blocks := Parse("<u>important</u>")
		require.Len(t, blocks, 1)
		children := blocks[0].Children
		require.Len(t, children, 1)
		assert.Equal(t, NodeUnderline, children[0].Type)
		assert.Equal(t, "important", children[0].Children[0].Text)
	})

	t.Run("earliest complete pair wins", func(t *testing.T) {
		blocks := Parse("<u>x</u> puis **y**")
		children := blocks[0].Children
		require.Len(t, children, 3)
		assert.Equal(t, NodeUnderline, children[0].Type)
		assert.Equal(t, NodeBold, children[2].Type)
	})

	t.Run("unbalanced markers stay literal", func(t *testing.T) {
		blocks := Parse("reste **littéral")
		children := blocks[0].Children
		require.Len(t, children, 1)
		assert.Equal(t, NodeText, children[0].Type)
		assert.Equal(t, "reste **littéral", children[0].Text)
	})
}

func TestPlainText(t *testing.T) {
	blocks := Parse("### Titre\nUn **mot** <u>souligné</u>")
	assert.Equal(t, "Titre\nUn mot souligné", PlainText(blocks))
}
