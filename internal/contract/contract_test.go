package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pets-provider/internal/contract"
)

func TestURIs(t *testing.T) {
	assert.Equal(t, "com.example.android.pets", contract.ContentAuthority)
	assert.Equal(t, "content://"+contract.ContentAuthority, contract.BaseContentURI)
	assert.Equal(t, contract.BaseContentURI+"/pets", contract.PetsContentURI)

	// La URI completa se arma desde la authority y el path.
	got := contract.WithAppendedPath("content://"+contract.ContentAuthority, contract.PathPets)
	assert.Equal(t, "content://com.example.android.pets/pets", got)
	assert.Equal(t, contract.PetsContentURI, got)
}

func TestWithAppendedPath(t *testing.T) {
	testCases := []struct {
		name    string
		base    string
		segment string
		want    string
	}{
		{name: "plain", base: "content://a", segment: "pets", want: "content://a/pets"},
		{name: "base with trailing slash", base: "content://a/", segment: "pets", want: "content://a/pets"},
		{name: "segment with slashes", base: "content://a", segment: "/pets/", want: "content://a/pets"},
		{name: "empty segment", base: "content://a", segment: "", want: "content://a"},
		{name: "escaped", base: "content://a", segment: "my pets", want: "content://a/my%20pets"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contract.WithAppendedPath(tc.base, tc.segment))
		})
	}
}

func TestWithAppendedID(t *testing.T) {
	assert.Equal(t, "content://com.example.android.pets/pets/42", contract.WithAppendedID(contract.PetsContentURI, 42))
}

func TestColumnNames_DistinctAndNonEmpty(t *testing.T) {
	cols := []string{
		contract.ID,
		contract.ColumnPetName,
		contract.ColumnPetBreed,
		contract.ColumnPetGender,
		contract.ColumnPetWeight,
	}
	seen := map[string]struct{}{}
	for _, c := range cols {
		require.NotEmpty(t, c)
		_, dup := seen[c]
		assert.False(t, dup, "duplicated column %q", c)
		seen[c] = struct{}{}
	}
	assert.Equal(t, "_id", contract.ID)
	assert.Equal(t, contract.BaseColumnID, contract.ID)
}

func TestPetsTable(t *testing.T) {
	tbl := contract.PetsTable()
	assert.Equal(t, "pets", tbl.Name)
	assert.Equal(t, contract.TableName, tbl.Name)
	assert.Equal(t, []string{"_id", "name", "breed", "gender", "weight"}, tbl.ColumnNames())

	types := map[string]contract.ColumnType{}
	for _, c := range tbl.Columns {
		types[c.Name] = c.Type
	}
	assert.Equal(t, contract.TypeInteger, types[contract.ID])
	assert.Equal(t, contract.TypeText, types[contract.ColumnPetName])
	assert.Equal(t, contract.TypeText, types[contract.ColumnPetBreed])
	assert.Equal(t, contract.TypeInteger, types[contract.ColumnPetGender])
	assert.Equal(t, contract.TypeInteger, types[contract.ColumnPetWeight])

	assert.True(t, tbl.HasColumn(contract.ColumnPetWeight))
	assert.False(t, tbl.HasColumn("owner"))

	// Mutar la copia no afecta al esquema canónico.
	tbl.Columns[1].Name = "changed"
	assert.Equal(t, contract.ColumnPetName, contract.PetsTable().Columns[1].Name)
}

func TestGender(t *testing.T) {
	assert.Equal(t, contract.Gender(0), contract.GenderUnknown)
	assert.Equal(t, contract.Gender(1), contract.GenderMale)
	assert.Equal(t, contract.Gender(2), contract.GenderFemale)
	assert.Len(t, contract.Genders(), 3)

	for _, g := range contract.Genders() {
		assert.True(t, g.Valid(), g.String())
	}
	assert.False(t, contract.Gender(3).Valid())
	assert.False(t, contract.Gender(-1).Valid())
	assert.Equal(t, "gender(7)", contract.Gender(7).String())
}

func TestParseGender(t *testing.T) {
	testCases := []struct {
		in   string
		want contract.Gender
		ok   bool
	}{
		{in: "male", want: contract.GenderMale, ok: true},
		{in: " Female ", want: contract.GenderFemale, ok: true},
		{in: "unknown", want: contract.GenderUnknown, ok: true},
		{in: "0", want: contract.GenderUnknown, ok: true},
		{in: "2", want: contract.GenderFemale, ok: true},
		{in: "3", ok: false},
		{in: "dog", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			g, ok := contract.ParseGender(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, g)
			}
		})
	}
}

func TestContentTypes(t *testing.T) {
	assert.Equal(t, "vnd.android.cursor.dir/com.example.android.pets/pets", contract.ContentListType)
	assert.Equal(t, "vnd.android.cursor.item/com.example.android.pets/pets", contract.ContentItemType)
}
