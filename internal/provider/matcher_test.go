package provider_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pets-provider/internal/provider"
)

func TestPetsMatcher(t *testing.T) {
	m := provider.NewPetsMatcher()

	testCases := []struct {
		name    string
		uri     string
		code    provider.Code
		id      int64
		canon   string
		wantErr bool
	}{
		{name: "collection", uri: "content://com.example.android.pets/pets", code: provider.CodePets, canon: "content://com.example.android.pets/pets"},
		{name: "collection trailing slash", uri: "content://com.example.android.pets/pets/", code: provider.CodePets, canon: "content://com.example.android.pets/pets"},
		{name: "row", uri: "content://com.example.android.pets/pets/7", code: provider.CodePetID, id: 7, canon: "content://com.example.android.pets/pets/7"},
		{name: "row zero", uri: "content://com.example.android.pets/pets/0", code: provider.CodePetID, id: 0, canon: "content://com.example.android.pets/pets/0"},
		{name: "unknown path", uri: "content://com.example.android.pets/staff", wantErr: true},
		{name: "non numeric id", uri: "content://com.example.android.pets/pets/abc", wantErr: true},
		{name: "negative id", uri: "content://com.example.android.pets/pets/-1", wantErr: true},
		{name: "leading zeros", uri: "content://com.example.android.pets/pets/007", code: provider.CodePetID, id: 7, canon: "content://com.example.android.pets/pets/7"},
		{name: "plus sign", uri: "content://com.example.android.pets/pets/+5", wantErr: true},
		{name: "negative zero", uri: "content://com.example.android.pets/pets/-0", wantErr: true},
		{name: "id overflow", uri: "content://com.example.android.pets/pets/99999999999999999999", wantErr: true},
		{name: "too deep", uri: "content://com.example.android.pets/pets/1/x", wantErr: true},
		{name: "other authority", uri: "content://com.example.android.dogs/pets", wantErr: true},
		{name: "other scheme", uri: "https://com.example.android.pets/pets", wantErr: true},
		{name: "authority only", uri: "content://com.example.android.pets", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Match(tc.uri)
			if tc.wantErr {
				assert.True(t, errors.Is(err, provider.ErrUnknownURI), "err=%v", err)
				assert.Equal(t, provider.NoMatch, got.Code)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.code, got.Code)
			assert.Equal(t, tc.id, got.ID)
			assert.Equal(t, tc.canon, got.URI)
		})
	}
}

func TestMatcher_Wildcard(t *testing.T) {
	m := provider.NewMatcher()
	m.AddURI("a.b", "tags/*", provider.Code(7))

	got, err := m.Match("content://a.b/tags/red")
	assert.NoError(t, err)
	assert.Equal(t, provider.Code(7), got.Code)

	_, err = m.Match("content://a.b/tags")
	assert.ErrorIs(t, err, provider.ErrUnknownURI)
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "PETS", provider.CodePets.String())
	assert.Equal(t, "PET_ID", provider.CodePetID.String())
	assert.Equal(t, "NO_MATCH", provider.NoMatch.String())
}

func TestMatch_Type(t *testing.T) {
	m := provider.NewPetsMatcher()

	coll, err := m.Match("content://com.example.android.pets/pets")
	assert.NoError(t, err)
	assert.Equal(t, "vnd.android.cursor.dir/com.example.android.pets/pets", coll.Type())

	row, err := m.Match("content://com.example.android.pets/pets/3")
	assert.NoError(t, err)
	assert.Equal(t, "vnd.android.cursor.item/com.example.android.pets/pets", row.Type())

	assert.Equal(t, "", provider.Match{Code: provider.NoMatch}.Type())
}
