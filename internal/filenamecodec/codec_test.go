package filenamecodec

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewindfinds/shopflow/internal/models"
	"rewindfinds/shopflow/internal/pipelineerror"
)

func TestDecodeAnchorsOnRightmostPrice(t *testing.T) {
	d, err := Decode("video-games_atari_Atari-2600_89.99.png")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPath{"video-games", "atari"}, d.CategoryPath)
	assert.Equal(t, "Atari 2600", d.Title)
	assert.True(t, decimal.NewFromFloat(89.99).Equal(d.Price))
	assert.Empty(t, d.Notes)
}

func TestDecodeWithNotes(t *testing.T) {
	d, err := Decode("toys_Mega-Man-Figure_24.5_sealed-in-box.png")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPath{"toys"}, d.CategoryPath)
	assert.Equal(t, "Mega Man Figure", d.Title)
	assert.True(t, decimal.NewFromFloat(24.5).Equal(d.Price))
	assert.Equal(t, "sealed in box", d.Notes)
}

func TestDecodeWithoutExtension(t *testing.T) {
	// The trailing ".99" is the price fraction, not a file extension.
	d, err := Decode("video-games_atari_Atari-2600_89.99")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPath{"video-games", "atari"}, d.CategoryPath)
	assert.True(t, decimal.NewFromFloat(89.99).Equal(d.Price))
}

func TestDecodeWithoutExtensionWithNotes(t *testing.T) {
	// The last dot sits inside the price; nothing may be stripped.
	d, err := Decode("toys_Mega-Man-Figure_24.5_sealed-in-box")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPath{"toys"}, d.CategoryPath)
	assert.Equal(t, "Mega Man Figure", d.Title)
	assert.True(t, decimal.NewFromFloat(24.5).Equal(d.Price))
	assert.Equal(t, "sealed in box", d.Notes)
}

func TestDecodeNumericLookingTitle(t *testing.T) {
	// "2600" in a note segment parses as a number, so the rightmost numeric
	// token wins the price anchor; that is the documented convention.
	d, err := Decode("video-games_atari_consoles_Atari-2600_89.99_boxed.png")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPath{"video-games", "atari", "consoles"}, d.CategoryPath)
	assert.Equal(t, "Atari 2600", d.Title)
	assert.Equal(t, "boxed", d.Notes)
}

func TestDecodeVariableDepth(t *testing.T) {
	d, err := Decode("a_b_c_d_e_f_Widget_1.00.png")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPath{"a", "b", "c", "d", "e", "f"}, d.CategoryPath)
	assert.Equal(t, "Widget", d.Title)
}

func TestDecodeTooFewSegments(t *testing.T) {
	_, err := Decode("Title_9.99.png")
	var malformed *pipelineerror.MalformedFilenameError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "Title_9.99.png")
}

func TestDecodeNoPrice(t *testing.T) {
	_, err := Decode("toys_figures_Mega-Man_boxed.png")
	var noPrice *pipelineerror.NoPriceFoundError
	require.ErrorAs(t, err, &noPrice)
	assert.Contains(t, err.Error(), "toys_figures_Mega-Man_boxed.png")
}

func TestDecodeFirstSegmentNeverPrice(t *testing.T) {
	// A leading numeric category must not be mistaken for the price.
	_, err := Decode("1982_consoles_Atari_unknown.png")
	var noPrice *pipelineerror.NoPriceFoundError
	assert.ErrorAs(t, err, &noPrice)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := models.ProductDescriptor{
		CategoryPath: models.CategoryPath{"video-games", "atari"},
		Title:        "Atari 2600",
		Price:        decimal.RequireFromString("89.99"),
		Notes:        "sealed in box",
	}

	filename := Encode(d, ".png")
	assert.Equal(t, "video-games_atari_Atari-2600_89.99_sealed-in-box.png", filename)

	back, err := Decode(filename)
	require.NoError(t, err)
	assert.Equal(t, d.CategoryPath, back.CategoryPath)
	assert.Equal(t, d.Title, back.Title)
	assert.True(t, d.Price.Equal(back.Price))
	assert.Equal(t, d.Notes, back.Notes)
}

func TestSaltIsDeterministicAndShort(t *testing.T) {
	a := Salt("video-games_atari_Atari-2600_89.99.png")
	b := Salt("video-games_atari_Atari-2600_89.99.png")
	c := Salt("video-games_atari_Atari-2600_89.99 (2).png")

	assert.Len(t, a, 6)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "different filenames must produce different salts")
}

func TestHandleIncludesSalt(t *testing.T) {
	d1, err := Decode("toys_Mega-Man_24.50_first.png")
	require.NoError(t, err)
	d2, err := Decode("toys_Mega-Man_24.50_second.png")
	require.NoError(t, err)

	// Same category/title/price, distinct handles.
	assert.NotEqual(t, d1.Handle(), d2.Handle())
	assert.Contains(t, d1.Handle(), "toys-mega-man-")
}

func TestTagsCappedAtSupportedDepth(t *testing.T) {
	d, err := Decode("a_b_c_d_e_f_Widget_1.00.png")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"category:a",
		"subcategory1:b",
		"subcategory2:c",
		"subcategory3:d",
		"subcategory4:e",
	}, d.Tags())
	// The sixth segment keeps its place in the path even without a tag.
	assert.Len(t, d.CategoryPath, 6)
}
