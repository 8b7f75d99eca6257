// Package engine implements the sort-time façade (§4.5 "Data flow for a
// sort"): from a ports.Game it builds one vertex's worth of domain.Plugin
// per cached handle, merges and condition-evaluates metadata (C6/C3) for
// every plugin in parallel via golang.org/x/sync/errgroup, resolves group
// attribution (C4), and hands the assembled set to the plugin sorter (C5).
package engine

import (
	"context"
	"path"

	"github.com/lacc97/libloot/internal/adapters/fs"
	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/core/ports"
	"github.com/lacc97/libloot/internal/engine/groups"
	"github.com/lacc97/libloot/internal/engine/sorter"
	"golang.org/x/sync/errgroup"
)

// Engine is the public entry point: sort(game) -> ordered sequence of
// plugin names (§6 Produced interfaces).
type Engine struct {
	logger ports.Logger
}

// New returns an Engine. logger receives warnings for plugins skipped due
// to introspection failure.
func New(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Sort builds the plugin graph for game and returns plugin names in a
// valid topological, tie-broken order. ctx is handed to the parallel
// metadata preparation pass, whose per-plugin work does not check it;
// neither that pass nor the single-threaded sorter stops early on
// cancellation (no cancellation protocol, §5).
func (e *Engine) Sort(ctx context.Context, game ports.Game) ([]string, error) {
	plugins, err := e.preparePlugins(ctx, game)
	if err != nil {
		return nil, err
	}

	resolver, err := e.attributeGroups(game, plugins)
	if err != nil {
		return nil, err
	}

	s := sorter.New(game.Filesystem(), game.DataPath(), e.logger)
	implicit := game.LoadOrderHandler().ImplicitlyActivePlugins()
	return s.Sort(plugins, resolver, implicit, game.IsUpdateEsmExempt())
}

// preparePlugins implements C1+C6+C3 preparation: every cached handle is
// introspected and its masterlist/userlist metadata merged and
// condition-filtered concurrently, since each plugin's work is independent
// and dominated by blocking filesystem calls. Vertex insertion order is
// preserved by writing results into a pre-sized slice keyed by the cache
// iterator's position, not by completion order (§5 Ordering guarantee).
func (e *Engine) preparePlugins(ctx context.Context, game ports.Game) ([]*domain.Plugin, error) {
	database := game.Database()
	fsys := game.Filesystem()
	dataPath := game.DataPath()

	var handles []ports.PluginHandle
	for h := range game.Cache().Plugins() {
		handles = append(handles, h)
	}

	orderIndex := make(map[string]int, len(game.CurrentLoadOrder()))
	for i, name := range game.CurrentLoadOrder() {
		orderIndex[domain.FoldFilename(name)] = i
	}

	prepared := make([]*domain.Plugin, len(handles))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range handles {
		g.Go(func() error {
			p, err := e.prepareOne(gctx, h, database, fsys, dataPath, orderIndex)
			if err != nil {
				return err
			}
			prepared[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plugins := make([]*domain.Plugin, 0, len(prepared))
	for _, p := range prepared {
		if p != nil {
			plugins = append(plugins, p)
		}
	}
	return plugins, nil
}

// prepareOne builds one domain.Plugin from its handle and merged metadata.
// A handle that fails IsValidAt at its resolved data-relative path is
// logged and skipped entirely (§7 Propagation policy: per-plugin
// introspection errors don't abort the sort).
func (e *Engine) prepareOne(_ context.Context, h ports.PluginHandle, database ports.Database, fsys ports.Filesystem, dataPath string, orderIndex map[string]int) (*domain.Plugin, error) {
	name := h.Name()
	resolved := fs.ResolvePluginPath(fsys, path.Join(dataPath, name))
	if !h.IsValidAt(resolved) {
		e.logger.Warn("skipping plugin that failed introspection: " + name)
		return nil, nil
	}

	p := domain.NewPlugin(name)
	p.IsMaster = h.IsMaster()
	p.Masters = h.Masters()
	p.OverrideFormIDs = h.OverrideFormIDs()
	if v, ok := h.Version(); ok {
		p.Version, p.HasVersion = v, true
	}
	if crc, ok := h.CRC(); ok {
		p.CRC, p.HasCRC = crc, true
	}
	if idx, ok := orderIndex[domain.FoldFilename(name)]; ok {
		p.LoadOrderIndex, p.HasLoadOrderIndex = idx, true
	}

	masterlist, err := database.GetPluginMetadata(name, false, true)
	if err != nil {
		return nil, err
	}
	user, err := database.GetPluginUserMetadata(name, true)
	if err != nil {
		return nil, err
	}

	for _, f := range masterlist.Metadata.Requirements {
		p.MasterlistRequirements[f.Name] = struct{}{}
	}
	for _, f := range user.Metadata.Requirements {
		p.UserRequirements[f.Name] = struct{}{}
	}
	for _, f := range masterlist.Metadata.LoadAfterFiles {
		p.MasterlistLoadAfter[f.Name] = struct{}{}
	}
	for _, f := range user.Metadata.LoadAfterFiles {
		p.UserLoadAfter[f.Name] = struct{}{}
	}

	merged := domain.MergeMetadata(masterlist.Metadata, user.Metadata)
	p.Group = domain.DefaultGroup
	if merged.HasGroup {
		p.Group = merged.Group
	}

	return p, nil
}

// attributeGroups implements C4: merge masterlist and userlist groups,
// compute per-group plugin attribution from each plugin's resolved Group,
// and populate every plugin's AfterGroupPlugins from its group's
// transitive closure.
func (e *Engine) attributeGroups(game ports.Game, plugins []*domain.Plugin) (*groups.Resolver, error) {
	database := game.Database()
	resolver := groups.NewResolver(database.GetGroups(false).Groups, database.GetUserGroups().Groups)

	groupPlugins := make(map[string][]string)
	for _, p := range plugins {
		groupPlugins[p.Group] = append(groupPlugins[p.Group], p.Name)
	}

	attributed, err := resolver.AttributePlugins(groupPlugins)
	if err != nil {
		return nil, err
	}

	for _, p := range plugins {
		for _, name := range attributed[p.Group] {
			p.AfterGroupPlugins[name] = struct{}{}
		}
	}
	return resolver, nil
}
