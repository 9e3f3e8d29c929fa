package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/models"
	"github.com/uddiwire/uddi/pkg/types"
)

func sample() *models.TModel {
	t := models.NewTModel("uuid:X", "Test")
	t.Operator = types.Some("op")
	t.AuthorizedName = types.Some("")
	t.AddDescription(models.NewLocalizedDescription("first", "en"), models.NewDescription("second"))
	t.OverviewDoc = &models.OverviewDoc{OverviewURL: models.NewOverviewURL("http://example.com/wsdl")}
	t.CategoryBag = &models.CategoryBag{
		KeyedReferences: types.List[models.KeyedReference]{
			models.NewKeyedReference("uuid:C", "", "1"),
		},
	}
	return t
}

func TestPutGet(t *testing.T) {
	c := New()
	in := sample()
	require.NoError(t, c.Put(in))
	assert.Equal(t, 1, c.Len())

	out, err := c.Get("uuid:X")
	require.NoError(t, err)
	assert.True(t, in.Equal(*out), "got %+v", out)
	assert.True(t, out.Operator.Valid())
	assert.True(t, out.AuthorizedName.Valid(), "present empty survives")
	assert.False(t, out.Name.Lang.Valid(), "absent survives")
	assert.Nil(t, out.IdentifierBag)
}

func TestGet_returns_copies(t *testing.T) {
	c := New()
	require.NoError(t, c.Put(sample()))

	first, err := c.Get("uuid:X")
	require.NoError(t, err)
	first.SetName("changed")
	first.Descriptions = nil

	second, err := c.Get("uuid:X")
	require.NoError(t, err)
	assert.Equal(t, "Test", second.NameText())
	assert.Equal(t, 2, second.Descriptions.Len())
}

func TestGet_miss(t *testing.T) {
	_, err := New().Get("uuid:nope")
	assert.True(t, errors.Is(err, constants.ErrCacheMiss))
}

func TestPut_requires_key(t *testing.T) {
	c := New()
	err := c.Put(models.NewTModel("", "unkeyed"))
	assert.True(t, errors.Is(err, constants.ErrMissingField))
	assert.Equal(t, 0, c.Len())
}

func TestDelete(t *testing.T) {
	c := New()
	require.NoError(t, c.Put(sample()))
	require.NoError(t, c.Put(models.NewTModel("uuid:Y", "Other")))

	c.Delete("uuid:X", "uuid:missing")
	assert.Equal(t, 1, c.Len())
	_, err := c.Get("uuid:Y")
	assert.NoError(t, err)
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("uuid:%d", i)
			assert.NoError(t, c.Put(models.NewTModel(key, key)))
			_, err := c.Get(key)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, c.Len())
}
