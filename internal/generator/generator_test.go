package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewindfinds/shopflow/internal/describer"
	"rewindfinds/shopflow/internal/models"
)

type failingDescriber struct{}

func (failingDescriber) Describe(context.Context, string, []string, string) (string, error) {
	return "", errors.New("service unavailable")
}

func TestBuildProducesProductAndCSVRow(t *testing.T) {
	images := []models.ImageFile{
		{URL: "https://cdn.example.com/files/video-games_atari_Atari-2600_89.99.png?v=12345"},
	}

	result := Build(context.Background(), images, describer.Static{}, "Rewind the Finds")

	require.Len(t, result.Products, 1)
	require.Len(t, result.CSVRows, 1)
	assert.Empty(t, result.Skipped)

	p := result.Products[0]
	assert.Equal(t, "Atari 2600", p.Name)
	assert.True(t, decimal.NewFromFloat(89.99).Equal(p.Price))
	assert.Equal(t, "video-games", p.Category)
	assert.Equal(t, "atari", p.Subcategory1)
	assert.Empty(t, p.Subcategory2)
	assert.Equal(t, []string{images[0].URL}, p.Images)
	assert.Equal(t, "available", p.Status)
	assert.Equal(t, 1, p.Quantity)
	assert.NotEmpty(t, p.Description)

	row := result.CSVRows[0]
	assert.Equal(t, p.ID, row.Handle)
	assert.Equal(t, "Rewind the Finds", row.Vendor)
	assert.Equal(t, "category:video-games, subcategory1:atari", row.Tags)
	assert.Equal(t, "TRUE", row.Published)
	assert.Equal(t, "Default Title", row.Option1Value)
	assert.Equal(t, images[0].URL, row.ImageSrc)
}

func TestBuildSkipsUndecodableFilenames(t *testing.T) {
	images := []models.ImageFile{
		{URL: "https://cdn.example.com/files/logo.png"},
		{URL: "https://cdn.example.com/files/toys_figures_Mega-Man-Figure_24.5.png"},
	}

	result := Build(context.Background(), images, describer.Static{}, "Rewind the Finds")

	require.Len(t, result.Products, 1)
	assert.Equal(t, "Mega Man Figure", result.Products[0].Name)
	assert.Equal(t, []string{"logo.png"}, result.Skipped)
}

func TestBuildFallsBackWhenDescriberFails(t *testing.T) {
	images := []models.ImageFile{
		{URL: "https://cdn.example.com/files/toys_figures_Mega-Man-Figure_24.5.png"},
	}

	result := Build(context.Background(), images, failingDescriber{}, "Rewind the Finds")

	require.Len(t, result.Products, 1)
	assert.NotEmpty(t, result.Products[0].Description, "fallback copy fills in for a failed describer")
}

func TestBuildHandlesAreStable(t *testing.T) {
	images := []models.ImageFile{
		{URL: "https://cdn.example.com/files/toys_figures_Mega-Man-Figure_24.5.png"},
	}

	first := Build(context.Background(), images, describer.Static{}, "Rewind the Finds")
	second := Build(context.Background(), images, describer.Static{}, "Rewind the Finds")

	require.Len(t, first.Products, 1)
	assert.Equal(t, first.Products[0].ID, second.Products[0].ID, "handles derive from the filename, not run state")
}
