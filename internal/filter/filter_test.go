package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"type:varchar(100)"`
	Color     string `gorm:"type:varchar(20)"`
	IsDeleted bool   `gorm:"not null;default:false"`
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))

	seed := []widget{
		{Name: "Alpha", Color: "red"},
		{Name: "Beta", Color: "blue"},
		{Name: "Gamma", Color: "red", IsDeleted: true},
	}
	require.NoError(t, db.Create(&seed).Error)

	return db
}

func widgetFilters() Map {
	return append(Base(),
		Entry{Field: "name", Apply: EqualsFold("name")},
		Entry{Field: "color", Apply: Equals("color")},
	)
}

func TestApply(t *testing.T) {
	db := setupDB(t)
	m := widgetFilters()

	var got []widget
	q := Apply(db.Model(&widget{}), m, []Descriptor{{Field: "color", Value: "red"}})
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 2)

	got = nil
	q = Apply(db.Model(&widget{}), m, []Descriptor{
		{Field: "color", Value: "red"},
		{Field: "is_deleted", Value: false},
	})
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 1)
	require.Equal(t, "Alpha", got[0].Name)
}

func TestApplyCaseInsensitive(t *testing.T) {
	db := setupDB(t)

	var got []widget
	q := Apply(db.Model(&widget{}), widgetFilters(), []Descriptor{{Field: "name", Value: "BETA"}})
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 1)
	require.Equal(t, "Beta", got[0].Name)
}

func TestApplyUnknownFieldIsNoOp(t *testing.T) {
	db := setupDB(t)

	var got []widget
	q := Apply(db.Model(&widget{}), widgetFilters(), []Descriptor{{Field: "bogus", Value: "anything"}})
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 3)
}

func TestApplyOrder(t *testing.T) {
	db := setupDB(t)
	orderable := []string{"name"}

	var got []widget
	require.NoError(t, ApplyOrder(db.Model(&widget{}), "name", orderable).Find(&got).Error)
	require.Equal(t, "Alpha", got[0].Name)

	got = nil
	require.NoError(t, ApplyOrder(db.Model(&widget{}), "-name", orderable).Find(&got).Error)
	require.Equal(t, "Gamma", got[0].Name)

	// fields outside the allow-list leave engine ordering untouched
	got = nil
	require.NoError(t, ApplyOrder(db.Model(&widget{}), "color", orderable).Find(&got).Error)
	require.Len(t, got, 3)
}

func TestEqualsOrIn(t *testing.T) {
	db := setupDB(t)
	m := append(widgetFilters(), Entry{Field: "color", Apply: EqualsOrIn("color")})

	var got []widget
	q := Apply(db.Model(&widget{}), m, []Descriptor{{Field: "color", Value: "blue"}})
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 1)
	require.Equal(t, "Beta", got[0].Name)

	got = nil
	q = Apply(db.Model(&widget{}), m, []Descriptor{{Field: "color", Value: []string{"red", "blue"}}})
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 3)
}

func TestMapShadowing(t *testing.T) {
	m := append(widgetFilters(), Entry{Field: "name", Apply: Equals("name")})

	h, ok := m.Handler("name")
	require.True(t, ok)

	db := setupDB(t)
	var got []widget
	// the later exact-match entry shadows the case-insensitive one
	require.NoError(t, h(db.Model(&widget{}), "BETA").Find(&got).Error)
	require.Empty(t, got)
}

func TestHas(t *testing.T) {
	filters := []Descriptor{{Field: "is_deleted", Value: true}}
	require.True(t, Has(filters, "is_deleted"))
	require.False(t, Has(filters, "name"))
	require.False(t, Has(nil, "is_deleted"))
}
