package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhushansable/Gurukrupa-Mess/internal/i18n"
)

func TestLookupEveryKeyHasBothLanguages(t *testing.T) {
	keys := i18n.Keys()
	require.NotEmpty(t, keys)
	for _, key := range keys {
		assert.NotEmpty(t, i18n.Lookup(key, i18n.English), key)
		assert.NotEmpty(t, i18n.Lookup(key, i18n.Marathi), key)
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "Out for Delivery", i18n.Lookup("out_for_delivery", i18n.English))
	assert.Equal(t, "रद्द", i18n.Lookup("cancelled", i18n.Marathi))
	assert.Equal(t, "Today's Menu", i18n.Lookup("todays_menu", i18n.English))
}

func TestLookupMissingKeyIsIdentity(t *testing.T) {
	for _, lang := range []i18n.Lang{i18n.English, i18n.Marathi} {
		assert.Equal(t, "not_a_key", i18n.Lookup("not_a_key", lang))
		assert.Equal(t, "Lunch Tiffin x2", i18n.Lookup("Lunch Tiffin x2", lang))
	}
	assert.False(t, i18n.Has("not_a_key"))
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want i18n.Lang
	}{
		{"en", i18n.English},
		{"EN", i18n.English},
		{"en-US", i18n.English},
		{"mr", i18n.Marathi},
		{"mr-IN", i18n.Marathi},
	}
	for _, tt := range tests {
		got, err := i18n.ParseLang(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := i18n.ParseLang("fr")
	assert.Error(t, err)
	_, err = i18n.ParseLang("")
	assert.Error(t, err)
}

func TestTranslator(t *testing.T) {
	tr := i18n.NewTranslator(i18n.English)
	assert.Equal(t, "Menu", tr.T("menu"))

	tr.SetLang(i18n.Marathi)
	assert.Equal(t, i18n.Marathi, tr.Lang())
	assert.Equal(t, "मेनू", tr.T("menu"))
	assert.Equal(t, "डाळ तडका", tr.Pick("Dal Tadka", "डाळ तडका"))
	assert.Equal(t, "Dal Tadka", tr.Pick("Dal Tadka", ""))
}
