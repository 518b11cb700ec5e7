package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)

	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)
}

func TestGetSimpleText_EOFEmpty(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Prompt", &out)
	assert.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(reader, "Description", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestParseCampaignID(t *testing.T) {
	id, err := parseCampaignID("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	_, err = parseCampaignID("abc")
	assert.Error(t, err)
	_, err = parseCampaignID("-1")
	assert.Error(t, err)
	_, err = parseCampaignID("")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	wei, err := parseAmount("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", wei.String())

	_, err = parseAmount("not-a-number")
	assert.Error(t, err)
}

func TestParseDeadline(t *testing.T) {
	d, err := parseDeadline("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 23, d.Hour(), "deadline lands at end of day")

	_, err = parseDeadline("31/12/2026")
	assert.Error(t, err)
}
