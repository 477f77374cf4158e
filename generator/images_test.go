package generator

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestImageDataURIEncodesFirstImage(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	res := &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{
			{Image: &genai.Image{ImageBytes: raw, MIMEType: "image/png"}},
		},
	}

	uri := imageDataURI(res)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestImageDataURIDefaultsMIMEType(t *testing.T) {
	res := &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{
			{Image: &genai.Image{ImageBytes: []byte{1, 2, 3}}},
		},
	}
	assert.True(t, strings.HasPrefix(imageDataURI(res), "data:image/png;base64,"))
}

func TestImageDataURIEmptyResponses(t *testing.T) {
	assert.Empty(t, imageDataURI(nil))
	assert.Empty(t, imageDataURI(&genai.GenerateImagesResponse{}))
	assert.Empty(t, imageDataURI(&genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{}},
	}))
	assert.Empty(t, imageDataURI(&genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{}}},
	}))
}
