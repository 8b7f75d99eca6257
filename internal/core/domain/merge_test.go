package domain_test

import (
	"testing"

	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMergeMetadata_ScalarFieldsPreferUser(t *testing.T) {
	t.Parallel()

	masterlist := domain.PluginMetadata{
		Name: "A.esp", Group: "early", HasGroup: true,
		Enabled: true, HasEnabled: true,
		Requirements: []domain.File{{Name: "B.esp"}},
	}
	user := domain.PluginMetadata{
		Name: "A.esp", Group: "late", HasGroup: true,
		Requirements: []domain.File{{Name: "C.esp"}},
	}

	merged := domain.MergeMetadata(masterlist, user)
	assert.Equal(t, "late", merged.Group)
	assert.True(t, merged.Enabled, "unset user.Enabled must not override the masterlist value")
	assert.ElementsMatch(t, []domain.File{{Name: "B.esp"}, {Name: "C.esp"}}, merged.Requirements)
}

func TestMergeMetadata_UserGroupAbsentKeepsMasterlist(t *testing.T) {
	t.Parallel()

	masterlist := domain.PluginMetadata{Name: "A.esp", Group: "early", HasGroup: true}
	user := domain.PluginMetadata{Name: "A.esp"}

	merged := domain.MergeMetadata(masterlist, user)
	assert.Equal(t, "early", merged.Group)
}

func TestMergeMetadata_Idempotent(t *testing.T) {
	t.Parallel()

	masterlist := domain.PluginMetadata{Name: "A.esp", Requirements: []domain.File{{Name: "B.esp"}}}
	user := domain.PluginMetadata{Name: "A.esp", Requirements: []domain.File{{Name: "C.esp"}}}

	first := domain.MergeMetadata(masterlist, user)
	second := domain.MergeMetadata(masterlist, user)
	assert.Equal(t, first, second)
}

func TestMergeGroups_UnionsAfterSetsAndIncludesDefault(t *testing.T) {
	t.Parallel()

	masterEarly := domain.NewGroup("early")
	masterEarly.AfterGroups["root"] = struct{}{}
	userEarly := domain.NewGroup("early")
	userEarly.AfterGroups["other"] = struct{}{}

	merged := domain.MergeGroups([]domain.Group{masterEarly}, []domain.Group{userEarly})

	var foundEarly, foundDefault bool
	for _, g := range merged {
		if g.Name == "early" {
			foundEarly = true
			_, hasRoot := g.AfterGroups["root"]
			_, hasOther := g.AfterGroups["other"]
			assert.True(t, hasRoot)
			assert.True(t, hasOther)
		}
		if g.Name == domain.DefaultGroup {
			foundDefault = true
		}
	}
	assert.True(t, foundEarly)
	assert.True(t, foundDefault)
}
