package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tabSpec = SourceSpec{
	Name:       "test-tab",
	Path:       "test.tsv",
	Delimiter:  DelimiterTab,
	HeaderRows: 2,
	MinColumns: 3,
}

var commaSpec = SourceSpec{
	Name:       "test-comma",
	Path:       "test.csv",
	Delimiter:  DelimiterComma,
	HeaderRows: 1,
	MinColumns: 2,
}

func TestParseSkipsHeaderRows(t *testing.T) {
	raw := "Title\nZone\tOrg\tAC\nThiruvananthapuram\tTVM City\tTVM North\n"
	rows := Parse(tabSpec, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"Thiruvananthapuram", "TVM City", "TVM North"}, rows[0])
}

func TestParseCommaDelimited(t *testing.T) {
	raw := "name,phone\nAdv. K Raju,9447000000\n"
	rows := Parse(commaSpec, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Adv. K Raju", rows[0][0])
}

func TestParseSkipsShortRows(t *testing.T) {
	raw := "h1\nh2\na\tb\tc\nshort\td\n\ne\tf\tg\th\n"
	rows := Parse(tabSpec, raw)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0][0])
	assert.Equal(t, "e", rows[1][0])
}

func TestParseHandlesCRLFAndBlankLines(t *testing.T) {
	raw := "h1\r\nh2\r\na\tb\tc\r\n\r\n"
	rows := Parse(tabSpec, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"a", "b", "c"}, rows[0])
}

func TestParseUnquotesCells(t *testing.T) {
	raw := "h\n\"Kollam East\",\" 9447 \"\n"
	rows := Parse(commaSpec, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Kollam East", rows[0][0])
	assert.Equal(t, "9447", rows[0][1])
}

func TestParseFileShorterThanHeader(t *testing.T) {
	assert.Nil(t, Parse(tabSpec, "only one line"))
	assert.Nil(t, Parse(tabSpec, ""))
}

func TestCellInt(t *testing.T) {
	assert.Equal(t, 42, CellInt("42"))
	assert.Equal(t, 920488, CellInt("9,20,488"))
	assert.Equal(t, 0, CellInt("NA"))
	assert.Equal(t, 0, CellInt("na"))
	assert.Equal(t, 0, CellInt(""))
	assert.Equal(t, 0, CellInt("abc"))
}

func TestCellPercent(t *testing.T) {
	assert.Equal(t, "19.13%", CellPercent(" 19.13% "))
	assert.Equal(t, "0%", CellPercent("NA"))
	assert.Equal(t, "0%", CellPercent(""))
}

func TestCellVotes(t *testing.T) {
	assert.Equal(t, "9,20,488", CellVotes("9,20,488"))
	assert.Equal(t, "0", CellVotes("NA"))
	assert.Equal(t, "0", CellVotes(""))
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "Adv. K Raju", CellText(" Adv. K Raju "))
	assert.Equal(t, "NA", CellText("NA"))
	assert.Equal(t, "NA", CellText(""))
}
