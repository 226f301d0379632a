package contract

// Tabla pets. Cada fila representa una mascota.
const (
	// PetsContentURI es la URI para acceder a la colección de mascotas.
	// Equivale a WithAppendedPath(BaseContentURI, PathPets).
	PetsContentURI = BaseContentURI + "/" + PathPets

	// Tipos MIME de la colección y de una fila.
	ContentListType = "vnd.android.cursor.dir/" + ContentAuthority + "/" + PathPets
	ContentItemType = "vnd.android.cursor.item/" + ContentAuthority + "/" + PathPets

	TableName = "pets"

	// Tipo: INTEGER
	ID = BaseColumnID
	// Tipo: TEXT
	ColumnPetName = "name"
	// Tipo: TEXT
	ColumnPetBreed = "breed"
	// Tipo: INTEGER. Solo GenderUnknown, GenderMale o GenderFemale.
	ColumnPetGender = "gender"
	// Tipo: INTEGER
	ColumnPetWeight = "weight"
)
