package sentinel2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinHref(t *testing.T) {
	for expected, inputs := range map[string][2]string{
		"https://host/archive.SAFE/manifest.safe":  {"https://host/archive.SAFE", "manifest.safe"},
		"https://host/archive.SAFE/MTD_MSIL2A.xml": {"https://host/archive.SAFE/", "./MTD_MSIL2A.xml"},
		"testdata/archive.SAFE/GRANULE/MTD_TL.xml": {"testdata/archive.SAFE", "./GRANULE/MTD_TL.xml"},
	} {
		assert.Equal(t, expected, joinHref(inputs[0], inputs[1]))
	}
}

func TestSASTokenResolver(t *testing.T) {
	resolver := SASTokenResolver("sv=abc&sig=def")

	assert.Equal(t, "https://host/a.xml?sv=abc&sig=def", resolver("https://host/a.xml"))
	assert.Equal(t, "https://host/a.xml?x=1&sv=abc&sig=def", resolver("https://host/a.xml?x=1"))
}

func TestSASTokenResolver_LeavesLocalHrefsAlone(t *testing.T) {
	resolver := SASTokenResolver("sv=abc")

	assert.Equal(t, "testdata/archive.SAFE/a.xml", resolver("testdata/archive.SAFE/a.xml"))
}

func TestSASTokenResolver_EmptyToken(t *testing.T) {
	resolver := SASTokenResolver("")

	assert.Equal(t, "https://host/a.xml", resolver("https://host/a.xml"))
}
