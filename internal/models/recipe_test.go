package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListValue(t *testing.T) {
	v, err := ImageList{"a.jpg", "b.jpg"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a.jpg","b.jpg"]`, v)

	v, err = ImageList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = ImageList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestImageListScan(t *testing.T) {
	var l ImageList
	require.NoError(t, l.Scan(`["a.jpg"]`))
	assert.Equal(t, ImageList{"a.jpg"}, l)

	var fromBytes ImageList
	require.NoError(t, fromBytes.Scan([]byte(`[]`)))
	assert.Equal(t, ImageList{}, fromBytes)

	var fromNil ImageList
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, ImageList{}, fromNil)
}

func TestImageListScanMalformedBlobFails(t *testing.T) {
	var l ImageList
	assert.Error(t, l.Scan("not json"))
	assert.Error(t, l.Scan(`{"oops":true}`))
	assert.Error(t, l.Scan(42))
}
