package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/scope"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	warnings := c.Normalize()
	require.Empty(t, warnings, "built-in catalog must normalize cleanly")

	snap := c.Snapshot()
	assert.Len(t, snap.Domains, 5)
	assert.NotEmpty(t, snap.Subcategories)
	assert.NotEmpty(t, snap.Questions)

	// Domains come back in display rank order.
	for i := 1; i < len(snap.Domains); i++ {
		assert.LessOrEqual(t, snap.Domains[i-1].Rank, snap.Domains[i].Rank)
	}

	// Every question resolves to a known subcategory and domain.
	for _, q := range snap.Questions {
		sc, ok := snap.SubcategoryByID(q.SubcategoryID)
		require.True(t, ok, "question %s subcategory", q.ID)
		_, ok = snap.DomainByID(sc.DomainID)
		require.True(t, ok, "subcategory %s domain", sc.ID)
		assert.Equal(t, sc.DomainID, q.DomainID, "question %s domain derived", q.ID)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	raw := `
version: 1
domains:
  - {id: d1, name: Domain One, rank: 1}
subcategories:
  - {id: s1, domain: d1, name: Sub One, criticality: HIGH, weight: 2.0}
questions:
  - {id: q1, subcategory: s1, text: "First question?", frameworks: [f1]}
frameworks:
  - {id: f1, name: Framework One, category: cat, enabled: true}
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, c.Normalize())

	snap := c.Snapshot()
	q := snap.Questions[0]
	assert.Equal(t, "d1", q.DomainID)
	assert.True(t, snap.InScope(q, scope.Filter{}))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNormalizeWarnings(t *testing.T) {
	c := &Catalog{
		Domains: []model.Domain{{ID: "d1", Name: "D1", Rank: 1}},
		Subcategories: []model.Subcategory{
			{ID: "s1", DomainID: "d1", Criticality: "BOGUS", Weight: -1},
			{ID: "s2", DomainID: "ghost", Criticality: model.CriticalityLow, Weight: 1},
		},
		Questions: []model.Question{
			{ID: "q1", SubcategoryID: "s1", Frameworks: []string{"missing-fw"}},
			{ID: "q2", SubcategoryID: "ghost-sub"},
		},
	}
	// Expected: bad criticality, negative weight, unknown domain,
	// unknown framework ref, unknown subcategory ref.
	warnings := c.Normalize()
	assert.Len(t, warnings, 5)

	// Malformed attributes are defaulted, not rejected.
	assert.Equal(t, model.CriticalityMedium, c.Subcategories[0].Criticality)
	assert.Equal(t, 1.0, c.Subcategories[0].Weight)
}

func TestInScope(t *testing.T) {
	c := &Catalog{
		Domains:       []model.Domain{{ID: "d1", Rank: 1}},
		Subcategories: []model.Subcategory{{ID: "s1", DomainID: "d1", Criticality: model.CriticalityLow, Weight: 1}},
		Questions: []model.Question{
			{ID: "q-both", SubcategoryID: "s1", Frameworks: []string{"fa", "fb"}},
			{ID: "q-disabled", SubcategoryID: "s1", Frameworks: []string{"fc"}},
			{ID: "q-dangling", SubcategoryID: "s1", Frameworks: []string{"ghost"}},
			{ID: "q-free", SubcategoryID: "s1"},
		},
		Frameworks: []model.Framework{
			{ID: "fa", Enabled: true},
			{ID: "fb", Enabled: true},
			{ID: "fc", Enabled: false},
		},
	}
	require.NotEmpty(t, c.Normalize()) // the dangling ref warns
	snap := c.Snapshot()

	q := func(id string) model.Question {
		for _, q := range snap.Questions {
			if q.ID == id {
				return q
			}
		}
		t.Fatalf("question %s missing", id)
		return model.Question{}
	}

	none := scope.Filter{}
	assert.True(t, snap.InScope(q("q-both"), none))
	assert.False(t, snap.InScope(q("q-disabled"), none), "disabled framework excludes its questions")
	assert.False(t, snap.InScope(q("q-dangling"), none), "dangling framework refs count as disabled")
	assert.True(t, snap.InScope(q("q-free"), none), "framework-free questions are always in scope")

	onlyFB := scope.Parse("fb")
	assert.True(t, snap.InScope(q("q-both"), onlyFB))
	onlyFA := scope.Parse("fa")
	assert.True(t, snap.InScope(q("q-both"), onlyFA))
	onlyFC := scope.Parse("fc")
	assert.False(t, snap.InScope(q("q-both"), onlyFC), "restriction to an unrelated framework excludes")
}

func TestOwnershipFallback(t *testing.T) {
	c := &Catalog{
		Domains:       []model.Domain{{ID: "d1", Rank: 1}},
		Subcategories: []model.Subcategory{{ID: "s1", DomainID: "d1", Criticality: model.CriticalityLow, Weight: 1, Ownership: "GRC"}},
		Questions: []model.Question{
			{ID: "q1", SubcategoryID: "s1", Ownership: "Engineering"},
			{ID: "q2", SubcategoryID: "s1"},
		},
	}
	c.Normalize()
	snap := c.Snapshot()
	assert.Equal(t, "Engineering", snap.Ownership(snap.Questions[0]))
	assert.Equal(t, "GRC", snap.Ownership(snap.Questions[1]))
}
