package engine_test

import (
	"context"
	"testing"

	"github.com/lacc97/libloot/internal/adapters/cache"
	"github.com/lacc97/libloot/internal/adapters/logger"
	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/core/ports"
	"github.com/lacc97/libloot/internal/core/ports/mocks"
	"github.com/lacc97/libloot/internal/engine"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeGame bundles the per-sort-run collaborators (§4.5 "Data flow for a
// sort"): a real GameCache (exercising its own locking and ordering), plus
// gomock doubles for the external ports this engine consults.
type fakeGame struct {
	cache      ports.PluginCache
	db         ports.Database
	loadOrder  ports.LoadOrderHandler
	fsys       ports.Filesystem
	dataPath   string
	order      []string
	updateExempt bool
}

func (g *fakeGame) Cache() ports.PluginCache               { return g.cache }
func (g *fakeGame) Database() ports.Database                { return g.db }
func (g *fakeGame) LoadOrderHandler() ports.LoadOrderHandler { return g.loadOrder }
func (g *fakeGame) Filesystem() ports.Filesystem             { return g.fsys }
func (g *fakeGame) DataPath() string                         { return g.dataPath }
func (g *fakeGame) CurrentLoadOrder() []string                { return g.order }
func (g *fakeGame) IsUpdateEsmExempt() bool                    { return g.updateExempt }

func mockHandle(t *testing.T, ctrl *gomock.Controller, name string) *mocks.MockPluginHandle {
	t.Helper()
	h := mocks.NewMockPluginHandle(ctrl)
	h.EXPECT().Name().Return(name).AnyTimes()
	h.EXPECT().IsMaster().Return(false).AnyTimes()
	h.EXPECT().Masters().Return(nil).AnyTimes()
	h.EXPECT().OverrideFormIDs().Return(nil).AnyTimes()
	h.EXPECT().Version().Return("", false).AnyTimes()
	h.EXPECT().CRC().Return(uint32(0), false).AnyTimes()
	h.EXPECT().IsValidAt(gomock.Any()).Return(true).AnyTimes()
	return h
}

func TestEngine_Sort_RequirementOrdersReferencedPluginFirst(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	gc := cache.New()
	gc.AddPlugin(mockHandle(t, ctrl, "A.esp"))
	gc.AddPlugin(mockHandle(t, ctrl, "B.esp"))

	db := mocks.NewMockDatabase(ctrl)
	db.EXPECT().GetPluginMetadata("A.esp", false, true).
		Return(ports.PluginMetadataResult{
			Found: true,
			Metadata: domain.PluginMetadata{
				Name:         "A.esp",
				Requirements: []domain.File{{Name: "B.esp"}},
			},
		}, nil).AnyTimes()
	db.EXPECT().GetPluginMetadata("B.esp", false, true).
		Return(ports.PluginMetadataResult{Found: true, Metadata: domain.NewPluginMetadata("B.esp")}, nil).AnyTimes()
	db.EXPECT().GetPluginUserMetadata(gomock.Any(), true).
		Return(ports.PluginMetadataResult{}, nil).AnyTimes()
	db.EXPECT().GetGroups(false).
		Return(ports.GroupsResult{Groups: []domain.Group{domain.NewGroup(domain.DefaultGroup)}}).AnyTimes()
	db.EXPECT().GetUserGroups().Return(ports.GroupsResult{}).AnyTimes()

	loadOrder := mocks.NewMockLoadOrderHandler(ctrl)
	loadOrder.EXPECT().ImplicitlyActivePlugins().Return(nil).AnyTimes()

	fsys := mocks.NewMockFilesystem(ctrl)
	fsys.EXPECT().Exists(gomock.Any()).Return(true).AnyTimes()
	fsys.EXPECT().Canonical(gomock.Any()).DoAndReturn(func(p string) (string, error) { return p, nil }).AnyTimes()

	game := &fakeGame{cache: gc, db: db, loadOrder: loadOrder, fsys: fsys, dataPath: "/data"}

	e := engine.New(logger.New())
	order, err := e.Sort(context.Background(), game)
	require.NoError(t, err)
	require.Equal(t, []string{"B.esp", "A.esp"}, order)
}

func TestEngine_Sort_SkipsPluginThatFailsIntrospection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	good := mockHandle(t, ctrl, "A.esp")
	bad := mocks.NewMockPluginHandle(ctrl)
	bad.EXPECT().Name().Return("Bad.esp").AnyTimes()
	bad.EXPECT().IsValidAt(gomock.Any()).Return(false).AnyTimes()

	gc := cache.New()
	gc.AddPlugin(good)
	gc.AddPlugin(bad)

	db := mocks.NewMockDatabase(ctrl)
	db.EXPECT().GetPluginMetadata("A.esp", false, true).
		Return(ports.PluginMetadataResult{Found: true, Metadata: domain.NewPluginMetadata("A.esp")}, nil).AnyTimes()
	db.EXPECT().GetPluginUserMetadata(gomock.Any(), true).
		Return(ports.PluginMetadataResult{}, nil).AnyTimes()
	db.EXPECT().GetGroups(false).
		Return(ports.GroupsResult{Groups: []domain.Group{domain.NewGroup(domain.DefaultGroup)}}).AnyTimes()
	db.EXPECT().GetUserGroups().Return(ports.GroupsResult{}).AnyTimes()

	loadOrder := mocks.NewMockLoadOrderHandler(ctrl)
	loadOrder.EXPECT().ImplicitlyActivePlugins().Return(nil).AnyTimes()

	fsys := mocks.NewMockFilesystem(ctrl)
	fsys.EXPECT().Exists(gomock.Any()).Return(true).AnyTimes()
	fsys.EXPECT().Canonical(gomock.Any()).DoAndReturn(func(p string) (string, error) { return p, nil }).AnyTimes()

	game := &fakeGame{cache: gc, db: db, loadOrder: loadOrder, fsys: fsys, dataPath: "/data"}

	e := engine.New(logger.New())
	order, err := e.Sort(context.Background(), game)
	require.NoError(t, err)
	require.Equal(t, []string{"A.esp"}, order, "Bad.esp failed IsValidAt and must never appear")
}
